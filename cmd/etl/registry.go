package main

import (
	"fmt"
	"os"

	"github.com/go-gota/gota/dataframe"
	"golang.org/x/text/encoding/charmap"

	"github.com/farxc/atlas-fiscal/internal/fiscal"
	"github.com/farxc/atlas-fiscal/internal/store"
)

// Column names under which each registry field has been seen across export
// vintages. Checked in order; first present column wins.
var (
	georefColumns     = []string{"id_georef", "georef", "in1"}
	nameColumns       = []string{"nombre", "municipio", "name"}
	populationColumns = []string{"poblacion_2022", "poblacion"}
	areaColumns       = []string{"superficie_km2", "superficie"}
	workforceColumns  = []string{"trabajadores", "personal"}
)

func OpenRegistryAndDecode(path string) (dataframe.DataFrame, error) {
	file, err := os.Open(path)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("failed to open registry file %s: %v", path, err)
	}

	defer file.Close()

	// Using Windows1252 because it is the encoding used by the original CSV files
	decoded := charmap.Windows1252.NewDecoder().Reader(file)
	df := dataframe.ReadCSV(decoded, dataframe.WithDelimiter(';'), dataframe.WithLazyQuotes(true))
	if df.Nrow() == 0 {
		return dataframe.DataFrame{}, fmt.Errorf("registry dataframe is empty")
	}

	return df, df.Error()
}

func dfRowToMunicipality(df dataframe.DataFrame, rowIdx int) (store.Municipality, error) {
	getStr := func(candidates []string) string {
		for _, col := range candidates {
			if containsString(df.Names(), col) {
				return df.Col(col).Elem(rowIdx).String()
			}
		}
		return ""
	}

	georef := fiscal.NormalizeGeoref(getStr(georefColumns))
	name := getStr(nameColumns)
	if name == "" {
		return store.Municipality{}, fmt.Errorf("row %d has no municipality name", rowIdx)
	}

	return store.Municipality{
		ID:         georef,
		Georef:     georef,
		Name:       name,
		Population: fiscal.ParseAmount(getStr(populationColumns)),
		AreaKm2:    fiscal.ParseAmount(getStr(areaColumns)),
		Workforce:  fiscal.ParseAmount(getStr(workforceColumns)),
	}, nil
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}
