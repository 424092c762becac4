package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-online/internal/markdown"
)

var renderMDCmd = &cobra.Command{
	Use:   "render-md [text]",
	Short: "Render rich text to HTML",
	Long:  "Prints the HTML fragment produced for a rich text value. Reads --file, the arguments, or stdin when given \"-\".",
	RunE:  runRenderMD,
}

var renderMDFile string

func init() {
	renderMDCmd.Flags().StringVarP(&renderMDFile, "file", "f", "", "Path to a file holding the rich text")
	rootCmd.AddCommand(renderMDCmd)
}

func runRenderMD(cmd *cobra.Command, args []string) error {
	text, err := readRichText(cmd.InOrStdin(), renderMDFile, args)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), markdown.Render(text))
	return err
}

func readRichText(stdin io.Reader, file string, args []string) (string, error) {
	switch {
	case file != "" && len(args) > 0:
		return "", fmt.Errorf("--file and text arguments are mutually exclusive")
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("failed to read rich text file: %w", err)
		}
		return string(data), nil
	case len(args) == 1 && args[0] == "-":
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	case len(args) > 0:
		return strings.Join(args, " "), nil
	default:
		return "", fmt.Errorf("provide rich text as arguments, \"-\" for stdin, or --file")
	}
}
