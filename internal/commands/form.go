package commands

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

const formUsage = "usage: f2f-form <country_code>"

type FormWriter interface {
	WriteF2FForm(countryCode string) (string, error)
}

// Form writes the F2F payment account form for args[0].
// newWriter runs only after the arguments are accepted.
func Form(args []string, stdout io.Writer, newWriter func() (FormWriter, error)) (int, error) {
	if len(args) < 1 {
		fmt.Fprintln(stdout, formUsage)
		return ExitFailure, nil
	}

	writer, err := newWriter()
	if err != nil {
		return ExitFailure, errors.Wrap(err, "init f2f form writer")
	}

	_, err = writer.WriteF2FForm(args[0])
	if err != nil {
		return ExitFailure, errors.Wrap(err, "f2f form")
	}
	return ExitOK, nil
}
