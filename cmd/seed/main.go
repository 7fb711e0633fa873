// seed vuelca el dataset de demostración como JSON en stdout, para
// inspeccionar qué genera el portal con un seed dado.
//
// Uso: go run ./cmd/seed [seed]
// Por defecto usa el seed 1 (el mismo del servidor en desarrollo).
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/jhoicas/portal-isp-api/internal/infrastructure/seed"
)

func main() {
	randomSeed := int64(1)
	if len(os.Args) > 1 {
		n, err := strconv.ParseInt(os.Args[1], 10, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "seed inválido %q: %v\n", os.Args[1], err)
			os.Exit(1)
		}
		randomSeed = n
	}

	dataset, err := seed.Generate(seed.Config{RandomSeed: randomSeed})
	if err != nil {
		fmt.Fprintf(os.Stderr, "generar dataset: %v\n", err)
		os.Exit(1)
	}

	// Los hashes de las cuentas demo no se vuelcan.
	out := map[string]any{
		"clients": dataset.Clients,
		"sales":   dataset.Sales,
		"admins":  dataset.Admins,
		"catalog": dataset.Catalog,
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		fmt.Fprintf(os.Stderr, "serializar dataset: %v\n", err)
		os.Exit(1)
	}
}
