// Package analytics contiene el núcleo analítico: primitivas de agrupación y
// agregación, operadores de ventana (rank, percent_rank, ntile), bandas
// numéricas y los 15 pipelines de reporte que se componen con ellas.
//
// Todo el paquete es puro: cada pipeline es una función del dataset inmutable
// y no toca estado compartido, así que los reportes pueden ejecutarse en
// paralelo sin coordinación.
package analytics

import (
	"math"
	"strings"

	"github.com/jhoicas/Analitica-retail/internal/domain/dataset"
	"github.com/shopspring/decimal"
)

// KeyFunc extrae una clave de agrupación de una fila unida.
type KeyFunc func(dataset.Row) string

// Measure extrae la medida numérica a reducir de una fila unida.
type Measure func(dataset.Row) decimal.Decimal

// Group partición de filas que comparten la misma tupla de claves.
type Group struct {
	Keys []string // valores de las claves, en el orden en que se pidieron
	Rows []dataset.Row
}

// Key devuelve el valor de la clave i-ésima.
func (g Group) Key(i int) string { return g.Keys[i] }

// groupSep separa los valores dentro de la clave compuesta del índice interno.
// US (unit separator): no aparece en identificadores ni categorías del dominio.
const groupSep = "\x1f"

// GroupBy particiona las filas por la tupla de claves indicada.
//
// El orden de emisión de los grupos es el de primera aparición de cada tupla;
// los pipelines que necesitan otro orden reordenan su propia salida.
func GroupBy(rows []dataset.Row, keys ...KeyFunc) []Group {
	index := make(map[string]int, 16)
	groups := make([]Group, 0, 16)

	for _, r := range rows {
		vals := make([]string, len(keys))
		for i, k := range keys {
			vals[i] = k(r)
		}
		composite := strings.Join(vals, groupSep)

		pos, ok := index[composite]
		if !ok {
			pos = len(groups)
			index[composite] = pos
			groups = append(groups, Group{Keys: vals})
		}
		groups[pos].Rows = append(groups[pos].Rows, r)
	}
	return groups
}

// Sum suma la medida sobre las filas.
func Sum(rows []dataset.Row, m Measure) decimal.Decimal {
	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(m(r))
	}
	return total
}

// Avg promedio de la medida. Grupo vacío devuelve cero (caso degenerado
// tolerado: los pipelines lo tratan como "sin datos", nunca como división).
func Avg(rows []dataset.Row, m Measure) decimal.Decimal {
	if len(rows) == 0 {
		return decimal.Zero
	}
	return Sum(rows, m).Div(decimal.NewFromInt(int64(len(rows))))
}

// Count cantidad de filas del grupo.
func Count(rows []dataset.Row) int { return len(rows) }

// CountDistinct cantidad de valores distintos de la clave dentro del grupo.
func CountDistinct(rows []dataset.Row, k KeyFunc) int {
	seen := make(map[string]struct{}, len(rows))
	for _, r := range rows {
		seen[k(r)] = struct{}{}
	}
	return len(seen)
}

// StddevPop desviación estándar poblacional de la medida:
// sqrt(mean((x - mean(x))^2)), dividiendo por n y no por n-1. Con todos los
// valores iguales (o grupo de una sola fila) devuelve cero exacto.
func StddevPop(rows []dataset.Row, m Measure) decimal.Decimal {
	n := len(rows)
	if n == 0 {
		return decimal.Zero
	}

	mean := Avg(rows, m)
	sumSq := decimal.Zero
	for _, r := range rows {
		d := m(r).Sub(mean)
		sumSq = sumSq.Add(d.Mul(d))
	}
	if sumSq.IsZero() {
		return decimal.Zero
	}

	variance, _ := sumSq.Div(decimal.NewFromInt(int64(n))).Float64()
	return decimal.NewFromFloat(math.Sqrt(variance))
}
