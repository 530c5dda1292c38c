package analytics

// Operadores de ventana. Trabajan por posición sobre una partición ya ordenada
// por el pipeline (incluida su clave secundaria determinista), de modo que el
// mismo operador sirve para cualquier tipo de fila.
//
// Los tres exigen la partición completamente materializada: el rank y el tamaño
// de cada cubeta dependen del tamaño total, no hay emisión parcial.

// Rank asigna ranking de competencia 1-based a una partición de n posiciones.
// equal(i, j) informa si las posiciones i y j comparten valor de la clave de
// orden: los empates reciben el mismo rank y el siguiente valor distinto salta
// tantos puestos como filas empatadas (1, 2, 2, 4...).
func Rank(n int, equal func(i, j int) bool) []int {
	ranks := make([]int, n)
	for i := 0; i < n; i++ {
		if i > 0 && equal(i, i-1) {
			ranks[i] = ranks[i-1]
		} else {
			ranks[i] = i + 1
		}
	}
	return ranks
}

// PercentRank convierte ranks de competencia en (rank-1)/(n-1).
// Particiones de tamaño 0 o 1 devuelven 0: no hay recorrido que medir.
func PercentRank(ranks []int) []float64 {
	n := len(ranks)
	out := make([]float64, n)
	if n <= 1 {
		return out
	}
	for i, r := range ranks {
		out[i] = float64(r-1) / float64(n-1)
	}
	return out
}

// Ntile reparte n posiciones ordenadas en k cubetas 1-based lo más parejas
// posible: cuando n no es múltiplo de k, las primeras n mod k cubetas reciben
// una fila extra.
func Ntile(n, k int) []int {
	out := make([]int, n)
	if k <= 0 {
		return out
	}

	base := n / k
	extra := n % k
	pos := 0
	for bucket := 1; bucket <= k && pos < n; bucket++ {
		size := base
		if bucket <= extra {
			size++
		}
		for i := 0; i < size; i++ {
			out[pos] = bucket
			pos++
		}
	}
	return out
}
