package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-online/internal/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate <data_<lang>.json>...",
	Short: "Validate content records against the JSON Schema",
	Long:  "Checks each content record file against the embedded content record schema. Exits with code 1 if any file fails.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, args []string) error {
	failed := 0
	for _, path := range args {
		err := schemas.ValidateContentRecordFile(path)
		if err == nil {
			_, _ = fmt.Fprintf(os.Stdout, "Validation passed: %s\n", path)
			continue
		}

		failed++
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			_, _ = fmt.Fprintf(os.Stdout, "Validation failed: %s\n%s", path, validationErr.Error())
			continue
		}
		_, _ = fmt.Fprintf(os.Stdout, "Validation failed: %s: %v\n", path, err)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d file(s) failed validation", failed, len(args))
	}
	return nil
}
