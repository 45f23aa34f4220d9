// Package export serializes assembled gazette tables as CSV files and
// formats them for terminal display.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/coolbeans/gazeta/pkg/gazette"
)

// WriteCSV serializes one table to the writer. Every field is quoted,
// matching what downstream spreadsheet imports expect of gazette exports;
// embedded quotes are doubled per RFC 4180.
func WriteCSV(w io.Writer, table gazette.Table) error {
	if err := writeCSVRow(w, table.Columns); err != nil {
		return err
	}
	for _, row := range table.Rows {
		if err := writeCSVRow(w, row); err != nil {
			return err
		}
	}
	return nil
}

func writeCSVRow(w io.Writer, fields []string) error {
	quoted := make([]string, len(fields))
	for i, field := range fields {
		quoted[i] = `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
	}
	_, err := fmt.Fprintf(w, "%s\r\n", strings.Join(quoted, ","))
	return err
}

// WriteCSVFiles writes one CSV file per category into the output directory,
// named after the table ("Normas" -> normas.csv). Tables with no rows still
// produce a header-only file so downstream imports see a stable file set.
// It returns the written paths in table-name order.
func WriteCSVFiles(outputDir string, tables gazette.Tables) ([]string, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("create output directory %s: %w", outputDir, err)
	}

	var written []string
	for _, name := range tableOrder(tables) {
		table := tables[name]
		path := filepath.Join(outputDir, fileNameFor(name))
		file, err := os.Create(path)
		if err != nil {
			return written, fmt.Errorf("create %s: %w", path, err)
		}
		err = WriteCSV(file, table)
		if closeErr := file.Close(); err == nil {
			err = closeErr
		}
		if err != nil {
			return written, fmt.Errorf("write %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}

// tableOrder returns the category names present, in presentation order.
func tableOrder(tables gazette.Tables) []string {
	fixed := []string{
		gazette.TableNorms,
		gazette.TablePropositions,
		gazette.TableRequirements,
		gazette.TableOpinions,
		gazette.TableAdministrative,
	}
	var present []string
	for _, name := range fixed {
		if _, ok := tables[name]; ok {
			present = append(present, name)
		}
	}
	return present
}

// fileNameFor converts a table name to a safe lowercase filename.
func fileNameFor(tableName string) string {
	name := strings.ToLower(tableName)
	name = strings.ReplaceAll(name, " ", "_")
	replacer := strings.NewReplacer("ç", "c", "õ", "o", "ã", "a", "é", "e", "í", "i")
	return replacer.Replace(name) + ".csv"
}
