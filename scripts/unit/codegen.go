package main

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

type unit struct {
	Name    string
	Code    string
	Scale   string
	Aliases []string
}

func main() {
	// Open the input file and read its contents
	data, err := readCsvFile(filepath.Join("scripts", "unit", "unit_data.csv"))
	if err != nil {
		panic(fmt.Errorf("error reading CSV file: %v", err))
	}

	// Convert the CSV records to a list of unit objects
	units, err := convertDataToUnits(data)
	if err != nil {
		panic(fmt.Errorf("error converting CSV records: %v", err))
	}

	// Generate Go code from the unit objects using a template
	code, err := generateGoCode(filepath.Join("scripts", "unit", "unit_data.tmpl"), units)
	if err != nil {
		panic(fmt.Errorf("error generating Go code: %v", err))
	}

	// Write the generated Go code to a file
	err = writeToFile("unit_data.go", code)
	if err != nil {
		panic(fmt.Errorf("error writing to file: %v", err))
	}
}

func readCsvFile(filename string) ([][]string, error) {
	// Open the CSV file
	in, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer func() { _ = in.Close() }()

	// Read the CSV records
	reader := csv.NewReader(in)
	_, err = reader.Read() // header
	if err != nil {
		return nil, err
	}
	recs, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	return recs, nil
}

// convertDataToUnits keeps the order of the CSV file, so the first record
// becomes the zero value of the Unit type.
func convertDataToUnits(data [][]string) ([]unit, error) {
	units := []unit{}
	seen := map[string]string{}
	for _, rec := range data {
		u := unit{
			Name:    rec[0],
			Code:    rec[1],
			Scale:   rec[2],
			Aliases: strings.Fields(rec[3]),
		}
		for _, alias := range u.Aliases {
			if other, ok := seen[alias]; ok {
				return nil, fmt.Errorf("alias %q is used by both %v and %v", alias, other, u.Name)
			}
			seen[alias] = u.Name
		}
		if _, ok := seen[u.Code]; !ok {
			return nil, fmt.Errorf("code %q of %v is not listed among its aliases", u.Code, u.Name)
		}
		units = append(units, u)
	}
	return units, nil
}

func generateGoCode(filename string, units []unit) ([]byte, error) {
	// Create a new template object from the template file
	tmpl, err := template.New(filepath.Base(filename)).ParseFiles(filename)
	if err != nil {
		return nil, err
	}

	// Execute the template
	var output bytes.Buffer
	err = tmpl.Execute(&output, units)
	if err != nil {
		return nil, err
	}

	// Format the output as Go code
	formatted, err := format.Source(output.Bytes())
	if err != nil {
		return nil, err
	}
	return formatted, nil
}

func writeToFile(filename string, content []byte) error {
	// Write the content to a file
	out, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()
	writer := bufio.NewWriter(out)
	_, err = writer.Write(content)
	if err != nil {
		return err
	}
	err = writer.Flush()
	if err != nil {
		return err
	}
	return nil
}
