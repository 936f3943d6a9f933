package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/doeshing/bddgen/internal/app"
	"github.com/doeshing/bddgen/internal/domain"
	"github.com/doeshing/bddgen/internal/infrastructure/export"
)

// NewGenerateCommand creates the generate command.
func NewGenerateCommand(container *app.Container) *cobra.Command {
	var (
		file    string
		text    string
		excerpt string
		outPath string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate BDD scenarios from a document",
		Long: "Reads a design document from --file (.txt or .docx), --text, --excerpt or\n" +
			"stdin, generates Gherkin scenarios and records the session in history.",
		RunE: func(cmd *cobra.Command, args []string) error {
			session := container.Session

			switch {
			case file != "":
				if err := session.SetDocumentFromFile(file); err != nil {
					return err
				}
			case text != "":
				session.SetDocument(text)
			case excerpt != "":
				session.SetExcerpt(excerpt)
			default:
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				session.SetDocument(string(data))
			}

			session.StartEffect()
			result, err := session.Generate(cmd.Context())
			session.StopEffect()
			if err != nil {
				return err
			}

			renderResult(cmd.OutOrStdout(), session.Settings(), result)

			if outPath != "" {
				if err := writePlainText(outPath, result); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "\nSaved to %s\n", outPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Read the document from a .txt or .docx file")
	cmd.Flags().StringVarP(&text, "text", "t", "", "Use the given text as the document")
	cmd.Flags().StringVar(&excerpt, "excerpt", "", "Use a pasted page excerpt as the document")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Also save the scenarios as plain text to this path")

	return cmd
}

func writePlainText(path string, result domain.GenerationResult) error {
	return os.WriteFile(path, []byte(export.PlainText(result)+"\n"), domain.SecureFilePermissions)
}
