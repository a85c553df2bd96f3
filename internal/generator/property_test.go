package generator

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/AndreyAkinshin/casegen/internal/canonical"
	"github.com/AndreyAkinshin/casegen/internal/dialect"
)

var propertyPool = []string{"total", "isValid", "lowest_price", "score", "rows"}

// randomCases builds a well-formed cases tree: top-level cases and groups one
// level deep, unique descriptions, properties drawn from a small pool.
func randomCases(r *rand.Rand) []canonical.Node {
	next := 0
	newCase := func() *canonical.Case {
		next++
		return &canonical.Case{
			Description: fmt.Sprintf("case %d", next),
			Property:    propertyPool[r.Intn(len(propertyPool))],
			Input:       canonical.Seq{canonical.Int(r.Int63n(100)), canonical.String("x")},
			Expected:    canonical.Map{{Key: "ok", Value: canonical.Bool(r.Intn(2) == 0)}},
		}
	}

	var nodes []canonical.Node
	for i := r.Intn(6); i > 0; i-- {
		if r.Intn(3) == 0 {
			g := &canonical.Group{Description: fmt.Sprintf("group %d", i), Comments: []string{"note"}}
			for j := r.Intn(4); j > 0; j-- {
				g.Cases = append(g.Cases, newCase())
			}
			nodes = append(nodes, g)
			continue
		}
		nodes = append(nodes, newCase())
	}
	return nodes
}

func properties(t *testing.T) *gopter.Properties {
	t.Helper()
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	parameters.Rng.Seed(time.Now().UnixNano())
	return gopter.NewProperties(parameters)
}

func TestWalk_Properties(t *testing.T) {
	d := dialect.NewGo()
	props := properties(t)

	props.Property("one unit per leaf case", prop.ForAll(
		func(seed int64) bool {
			cases := randomCases(rand.New(rand.NewSource(seed)))
			units, _, err := Walk(cases, d)
			return err == nil && len(units) == canonical.CountCases(cases)
		},
		gen.Int64(),
	))

	props.Property("only the first unit runs", prop.ForAll(
		func(seed int64) bool {
			units, _, err := Walk(randomCases(rand.New(rand.NewSource(seed))), d)
			if err != nil {
				return false
			}
			for i, u := range units {
				if u.Position != i || u.Skip != (i != 0) {
					return false
				}
			}
			return true
		},
		gen.Int64(),
	))

	props.Property("one helper per distinct property", prop.ForAll(
		func(seed int64) bool {
			units, reg, err := Walk(randomCases(rand.New(rand.NewSource(seed))), d)
			if err != nil {
				return false
			}
			distinct := make(map[string]bool)
			for _, u := range units {
				distinct[u.Property] = true
				if !reg.Has(u.Property) {
					return false
				}
			}
			return reg.Len() == len(distinct)
		},
		gen.Int64(),
	))

	props.TestingRun(t)
}

func TestGenerate_Properties(t *testing.T) {
	d := dialect.NewGo()
	props := properties(t)

	props.Property("output is deterministic", prop.ForAll(
		func(seed int64) bool {
			cases := randomCases(rand.New(rand.NewSource(seed)))
			a, errA := Generate(cases, "package demo_test", d)
			b, errB := Generate(cases, "package demo_test", d)
			return errA == nil && errB == nil && a == b
		},
		gen.Int64(),
	))

	props.Property("go output parses and every test calls its helper", prop.ForAll(
		func(seed int64) bool {
			cases := randomCases(rand.New(rand.NewSource(seed)))
			n := canonical.CountCases(cases)
			preamble := d.Preamble(dialect.Meta{Exercise: "demo", CaseCount: n})
			src, err := Generate(cases, preamble, d)
			if err != nil {
				t.Logf("Generate() error = %v", err)
				return false
			}
			f, err := parser.ParseFile(token.NewFileSet(), "demo_test.go", src, 0)
			if err != nil {
				t.Logf("ParseFile() error = %v\n%s", err, src)
				return false
			}

			helpers := make(map[string]bool)
			tests := 0
			for _, decl := range f.Decls {
				fn, ok := decl.(*ast.FuncDecl)
				if !ok {
					continue
				}
				if !strings.HasPrefix(fn.Name.Name, "Test_") {
					helpers[fn.Name.Name] = true
					continue
				}
				tests++
				last := fn.Body.List[len(fn.Body.List)-1].(*ast.ExprStmt).X.(*ast.CallExpr)
				if !helpers[last.Fun.(*ast.Ident).Name] {
					return false
				}
			}
			return tests == n
		},
		gen.Int64(),
	))

	props.TestingRun(t)
}
