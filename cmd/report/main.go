// Ejecuta los reportes analíticos desde la línea de comandos contra los CSV
// configurados e imprime tablas alineadas o JSON. Es un consumidor externo del
// núcleo: toda la computación vive en internal/application/analytics.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"reflect"
	"strings"
	"text/tabwriter"

	"github.com/jhoicas/Analitica-retail/internal/application/analytics"
	"github.com/jhoicas/Analitica-retail/internal/infrastructure/csvstore"
	"github.com/jhoicas/Analitica-retail/pkg/config"
	"github.com/jhoicas/Analitica-retail/pkg/logger"
)

func main() {
	slug := flag.String("report", "", "slug del reporte a ejecutar (vacío = todos)")
	format := flag.String("format", "table", "formato de salida: table | json")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "warn"})

	loader := csvstore.NewLoader(cfg.Data.ItemsPath, cfg.Data.OutletsPath, cfg.Data.SalesPath)
	ds, err := loader.LoadDataset()
	if err != nil {
		log.Fatal().Err(err).Msg("carga del dataset")
	}

	svc, err := analytics.NewService(ds, cfg.Report.TopItemsLimit)
	if err != nil {
		log.Fatal().Err(err).Msg("construcción del servicio de reportes")
	}

	if *slug != "" {
		rows, err := svc.Run(*slug)
		if err != nil {
			log.Fatal().Err(err).Str("report", *slug).Msg("ejecución del reporte")
		}
		printReport(*slug, rows, *format)
		return
	}

	for _, meta := range svc.Catalog() {
		rows, _ := svc.Run(meta.Slug)
		fmt.Printf("── %d. %s ──\n", meta.ID, meta.Name)
		printReport(meta.Slug, rows, *format)
		fmt.Println()
	}
}

func printReport(slug string, rows any, format string) {
	if format == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rows); err != nil {
			fmt.Fprintln(os.Stderr, "serializar", slug+":", err)
		}
		return
	}
	printTable(rows)
}

// printTable imprime un slice de structs DTO como tabla alineada, con los
// nombres de columna tomados de los tags json (el orden documentado de cada
// reporte es el orden de los campos del struct).
func printTable(rows any) {
	v := reflect.ValueOf(rows)
	if v.Kind() != reflect.Slice || v.Len() == 0 {
		fmt.Println("(sin filas)")
		return
	}

	elem := v.Index(0).Type()
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)

	headers := make([]string, 0, elem.NumField())
	for i := 0; i < elem.NumField(); i++ {
		tag := strings.Split(elem.Field(i).Tag.Get("json"), ",")[0]
		if tag == "" {
			tag = elem.Field(i).Name
		}
		headers = append(headers, tag)
	}
	fmt.Fprintln(w, strings.Join(headers, "\t"))

	for i := 0; i < v.Len(); i++ {
		cells := make([]string, 0, elem.NumField())
		for j := 0; j < elem.NumField(); j++ {
			cells = append(cells, fmt.Sprintf("%v", v.Index(i).Field(j).Interface()))
		}
		fmt.Fprintln(w, strings.Join(cells, "\t"))
	}
	w.Flush()
}
