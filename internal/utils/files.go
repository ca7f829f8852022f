package utils

import (
	"os"
	"path/filepath"
	"strings"
)

func GetFilename(filePath string) string {
	// Get the base name (removes directory components)
	base := filepath.Base(filePath)

	// Remove the extension (everything after last dot)
	ext := filepath.Ext(base)

	return strings.TrimSuffix(base, ext)
}

// OpenFile creates outputPath/fileSuffix/name.txt when makeDir is set,
// outputPath/name_fileSuffix.txt otherwise.
func OpenFile(makeDir bool, outputPath string, fileSuffix, name string) (*os.File, error) {
	if makeDir && fileSuffix != "" && fileSuffix != "." {
		if err := os.MkdirAll(outputPath+fileSuffix, 0750); err != nil {
			return nil, err
		}
		return os.Create(outputPath + fileSuffix + "/" + name + ".txt")
	}
	if fileSuffix == "" {
		return os.Create(outputPath + name + ".txt")
	}
	return os.Create(outputPath + name + "_" + fileSuffix + ".txt")
}

// OutputPath normalizes a directory for OpenFile, creating it when needed.
func OutputPath(dir string) (string, error) {
	if dir == "" || dir == "." {
		return "", nil
	}
	if err := os.MkdirAll(dir, 0750); err != nil {
		return "", err
	}
	if dir[len(dir)-1] != '/' {
		dir += "/"
	}
	return dir, nil
}
