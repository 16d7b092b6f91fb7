package findx

import (
	"os"

	"github.com/boostgo/errorx"
)

var (
	ErrPathNotFound    = errorx.New("findx.path.not_found")
	ErrNotDirectory    = errorx.New("findx.root.not_directory")
	ErrInvalidArgument = errorx.New("findx.argument.invalid")
	ErrScanDirectory   = errorx.New("findx.scan.directory")
)

type pathErrorContext struct {
	Path  string `json:"path"`
	Error error  `json:"error"`
}

func newPathNotFoundError(path string) error {
	return ErrPathNotFound.
		SetError(os.ErrNotExist).
		SetData(pathErrorContext{
			Path:  path,
			Error: os.ErrNotExist,
		})
}

func newNotDirectoryError(path string) error {
	return ErrNotDirectory.
		SetData(pathErrorContext{
			Path:  path,
			Error: nil,
		})
}

type argumentErrorContext struct {
	Argument string `json:"argument"`
	Value    string `json:"value"`
}

func newInvalidArgumentError(argument, value string) error {
	return ErrInvalidArgument.
		SetData(argumentErrorContext{
			Argument: argument,
			Value:    value,
		})
}

func newScanDirectoryError(path string, err error) error {
	return ErrScanDirectory.
		SetError(err).
		SetData(pathErrorContext{
			Path:  path,
			Error: err,
		})
}
