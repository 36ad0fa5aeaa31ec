package units

import "github.com/mintriago123/bancoalimentostest-sub002/internal/domain/entity"

type edgeKey struct {
	from string
	to   string
}

// Graph tabla de consulta de solo lectura sobre las aristas de conversión de una operación.
// Las aristas inválidas (símbolo vacío o factor <= 0) se descartan; ante aristas
// duplicadas para el mismo par gana la primera.
type Graph struct {
	edges []entity.ConversionEdge
	index map[edgeKey]entity.ConversionEdge
}

// NewGraph construye el grafo a partir de las aristas del almacén.
func NewGraph(edges []entity.ConversionEdge) *Graph {
	g := &Graph{
		edges: make([]entity.ConversionEdge, 0, len(edges)),
		index: make(map[edgeKey]entity.ConversionEdge, len(edges)),
	}
	for _, e := range edges {
		if !e.Valid() {
			continue
		}
		k := edgeKey{from: e.SymbolFrom, to: e.SymbolTo}
		if _, dup := g.index[k]; dup {
			continue
		}
		g.index[k] = e
		g.edges = append(g.edges, e)
	}
	return g
}

// Edge busca la arista directa from -> to.
func (g *Graph) Edge(from, to string) (entity.ConversionEdge, bool) {
	if g == nil {
		return entity.ConversionEdge{}, false
	}
	e, ok := g.index[edgeKey{from: from, to: to}]
	return e, ok
}

// Len número de aristas válidas.
func (g *Graph) Len() int {
	if g == nil {
		return 0
	}
	return len(g.edges)
}

// Edges devuelve una copia de las aristas válidas en el orden de carga.
func (g *Graph) Edges() []entity.ConversionEdge {
	if g == nil {
		return nil
	}
	out := make([]entity.ConversionEdge, len(g.edges))
	copy(out, g.edges)
	return out
}
