package category

// Row representa um nó da árvore projetado para exibição tabular
type Row struct {
	*Category
	Depth      int    // Profundidade a partir da raiz (raiz = 0)
	ParentName string // Nome da categoria pai (vazio para raiz)
}

type frame struct {
	node       *Category
	depth      int
	parentName string
}

// Flatten percorre a floresta em profundidade (pai antes dos filhos,
// irmãos na ordem de entrada) e produz a sequência plana de linhas.
// O percurso é iterativo e carrega um conjunto de visitados: um nó
// alcançável por mais de um caminho é emitido uma única vez, o que
// também encerra o percurso em entradas cíclicas.
func Flatten(roots []*Category) []Row {
	rows := make([]Row, 0, len(roots))
	visited := make(map[string]bool)

	stack := make([]frame, 0, len(roots))
	for i := len(roots) - 1; i >= 0; i-- {
		stack = append(stack, frame{node: roots[i], depth: 0})
	}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.node == nil || visited[f.node.ID] {
			continue
		}
		visited[f.node.ID] = true

		rows = append(rows, Row{Category: f.node, Depth: f.depth, ParentName: f.parentName})

		for i := len(f.node.Children) - 1; i >= 0; i-- {
			stack = append(stack, frame{
				node:       f.node.Children[i],
				depth:      f.depth + 1,
				parentName: f.node.Name,
			})
		}
	}

	return rows
}

// Project produz as linhas visíveis para uma tabela com expansão
// incremental: as raízes sempre aparecem e os filhos diretos de um nó
// aparecem apenas quando o nó está presente no conjunto de expandidos
// e é ele próprio visível. Recolher um nó remove exatamente os seus
// descendentes da projeção.
func Project(roots []*Category, expanded map[string]bool) []Row {
	rows := make([]Row, 0, len(roots))
	visited := make(map[string]bool)

	stack := make([]frame, 0, len(roots))
	for i := len(roots) - 1; i >= 0; i-- {
		stack = append(stack, frame{node: roots[i], depth: 0})
	}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.node == nil || visited[f.node.ID] {
			continue
		}
		visited[f.node.ID] = true

		rows = append(rows, Row{Category: f.node, Depth: f.depth, ParentName: f.parentName})

		if !expanded[f.node.ID] {
			continue
		}
		for i := len(f.node.Children) - 1; i >= 0; i-- {
			stack = append(stack, frame{
				node:       f.node.Children[i],
				depth:      f.depth + 1,
				parentName: f.node.Name,
			})
		}
	}

	return rows
}

// BuildTree monta a floresta a partir de uma lista plana de categorias,
// ligando cada nó ao pai pelo ParentID. Nós com pai inexistente são
// tratados como raízes. A ordem de entrada é preservada entre irmãos.
func BuildTree(flat []*Category) []*Category {
	byID := make(map[string]*Category, len(flat))
	for _, c := range flat {
		c.Children = nil
		byID[c.ID] = c
	}

	roots := make([]*Category, 0, len(flat))
	for _, c := range flat {
		if c.ParentID == "" {
			roots = append(roots, c)
			continue
		}
		parent, ok := byID[c.ParentID]
		if !ok || parent == c {
			roots = append(roots, c)
			continue
		}
		parent.Children = append(parent.Children, c)
	}

	return roots
}

// CountNodes conta os nós alcançáveis da floresta (cada nó uma vez)
func CountNodes(roots []*Category) int {
	return len(Flatten(roots))
}
