package utils

// SignChange reports whether f changes sign between a and b, the entry
// condition of a bracketing method.
func SignChange(f func(float64) (float64, error), a, b float64) (bool, error) {
	fa, err := f(a)
	if err != nil {
		return false, err
	}
	fb, err := f(b)
	if err != nil {
		return false, err
	}
	return fa*fb < 0 || fa == 0 || fb == 0, nil
}
