package constants

const MaxIterations = 100
const ConvergenceError float64 = 0.01 // 1% approximate relative error
const DivergingError float64 = 20     // 2000%
const RootTolerance float64 = 0.5     // |f(x)| accepted as a root
const Delta float64 = 0.01            // modified secant perturbation fraction
