// Package units implementa el motor de conversión de unidades físicas del inventario:
// grafo de factores de conversión, redondeo y formato de cantidades, selección de la
// unidad más legible para mostrar y conversión directa entre dos unidades.
//
// Todas las funciones son puras: reciben el grafo de conversiones cargado para la
// operación en curso y no guardan estado entre llamadas.
package units
