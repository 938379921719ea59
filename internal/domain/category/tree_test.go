package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func node(id, name, parentID string, children ...*Category) *Category {
	return &Category{ID: id, Name: name, ParentID: parentID, Children: children}
}

// fixture monta uma floresta no formato do catálogo da loja:
// categoria → subcategoria → marca → variante
func fixture() []*Category {
	return []*Category{
		node("c1", "Lighting", "",
			node("s1", "Bulbs", "c1",
				node("b1", "Osaka", "s1",
					node("v1", "10 Watt", "b1"),
					node("v2", "18 Watt", "b1"),
				),
				node("b2", "Phinix", "s1",
					node("v3", "9 Watt", "b2"),
				),
			),
			node("s2", "Tube Lights", "c1"),
		),
		node("c2", "Wiring", "",
			node("s3", "Copper Wires", "c2"),
		),
		node("c3", "Fans", ""),
	}
}

func ids(rows []Row) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.ID)
	}
	return out
}

func TestFlatten(t *testing.T) {
	t.Run("pai antes dos filhos, irmãos na ordem de entrada", func(t *testing.T) {
		rows := Flatten(fixture())

		assert.Equal(t, []string{"c1", "s1", "b1", "v1", "v2", "b2", "v3", "s2", "c2", "s3", "c3"}, ids(rows))
	})

	t.Run("profundidade igual ao tamanho do caminho até a raiz", func(t *testing.T) {
		rows := Flatten(fixture())

		depths := map[string]int{}
		for _, r := range rows {
			depths[r.ID] = r.Depth
		}

		assert.Equal(t, 0, depths["c1"])
		assert.Equal(t, 1, depths["s1"])
		assert.Equal(t, 2, depths["b1"])
		assert.Equal(t, 3, depths["v1"])
		assert.Equal(t, 0, depths["c3"])
	})

	t.Run("nome do pai anotado em cada linha", func(t *testing.T) {
		rows := Flatten(fixture())

		parents := map[string]string{}
		for _, r := range rows {
			parents[r.ID] = r.ParentName
		}

		assert.Equal(t, "", parents["c1"])
		assert.Equal(t, "Lighting", parents["s1"])
		assert.Equal(t, "Bulbs", parents["b1"])
		assert.Equal(t, "Osaka", parents["v2"])
	})

	t.Run("reagrupar as linhas reconstrói a adjacência original", func(t *testing.T) {
		original := fixture()
		rows := Flatten(original)

		flat := make([]*Category, 0, len(rows))
		for _, r := range rows {
			copied := *r.Category
			flat = append(flat, &copied)
		}
		rebuilt := BuildTree(flat)

		assert.Equal(t, ids(Flatten(fixture())), ids(Flatten(rebuilt)))

		byID := map[string]*Category{}
		for _, r := range Flatten(rebuilt) {
			byID[r.ID] = r.Category
		}
		require.Contains(t, byID, "s1")
		require.Len(t, byID["s1"].Children, 2)
		assert.Equal(t, "b1", byID["s1"].Children[0].ID)
		assert.Equal(t, "b2", byID["s1"].Children[1].ID)
	})

	t.Run("entrada cíclica termina e emite cada nó uma vez", func(t *testing.T) {
		a := node("a", "A", "")
		b := node("b", "B", "a")
		a.Children = []*Category{b}
		b.Children = []*Category{a}

		rows := Flatten([]*Category{a})

		assert.Equal(t, []string{"a", "b"}, ids(rows))
	})

	t.Run("floresta vazia produz sequência vazia", func(t *testing.T) {
		assert.Empty(t, Flatten(nil))
	})
}

func TestProject(t *testing.T) {
	t.Run("sem expansão aparecem apenas as raízes", func(t *testing.T) {
		rows := Project(fixture(), nil)

		assert.Equal(t, []string{"c1", "c2", "c3"}, ids(rows))
	})

	t.Run("expandir mostra apenas os filhos diretos", func(t *testing.T) {
		rows := Project(fixture(), map[string]bool{"c1": true})

		assert.Equal(t, []string{"c1", "s1", "s2", "c2", "c3"}, ids(rows))
	})

	t.Run("expansão em cadeia alcança níveis mais profundos", func(t *testing.T) {
		expanded := map[string]bool{"c1": true, "s1": true, "b1": true}
		rows := Project(fixture(), expanded)

		assert.Equal(t, []string{"c1", "s1", "b1", "v1", "v2", "b2", "s2", "c2", "c3"}, ids(rows))
	})

	t.Run("nó expandido mas invisível não contribui filhos", func(t *testing.T) {
		// s1 expandido sem c1 expandido: s1 não aparece, logo b1/b2 também não
		rows := Project(fixture(), map[string]bool{"s1": true})

		assert.Equal(t, []string{"c1", "c2", "c3"}, ids(rows))
	})

	t.Run("recolher remove exatamente os descendentes do nó", func(t *testing.T) {
		expanded := map[string]bool{"c1": true, "s1": true, "b1": true}
		before := ids(Project(fixture(), expanded))

		delete(expanded, "s1")
		after := ids(Project(fixture(), expanded))

		assert.Equal(t, []string{"c1", "s1", "b1", "v1", "v2", "b2", "s2", "c2", "c3"}, before)
		assert.Equal(t, []string{"c1", "s1", "s2", "c2", "c3"}, after)
	})
}

func TestBuildTree(t *testing.T) {
	t.Run("pai inexistente vira raiz", func(t *testing.T) {
		flat := []*Category{
			node("x", "X", "desconhecido"),
			node("y", "Y", ""),
		}

		roots := BuildTree(flat)

		assert.Len(t, roots, 2)
	})
}
