package printer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/marcoroth/herb/internal/ast"
	"github.com/marcoroth/herb/internal/token"
)

func textToken(s string) token.Token {
	return token.Token{Kind: token.IDENTIFIER, Value: []byte(s)}
}

func TestPrintDocumentWithElement(t *testing.T) {
	doc := &ast.Document{
		Children: []ast.Node{
			&ast.Element{
				Base:    ast.Base{Kind: ast.KindElement},
				TagName: textToken("div"),
				OpenTag: &ast.OpenTag{Base: ast.Base{Kind: ast.KindOpenTag}},
				Body: []ast.Node{
					&ast.Text{Base: ast.Base{Kind: ast.KindText}, Content: "hi"},
				},
			},
		},
	}

	out := Print(doc)
	require.True(t, strings.HasPrefix(out, "Document\n"))
	require.Contains(t, out, `Element "div"`)
	require.Contains(t, out, `Text "hi"`)
}

func TestPrintNodeERBIf(t *testing.T) {
	node := &ast.ERBIf{
		Base:           ast.Base{Kind: ast.KindERBIf},
		ConditionToken: textToken("admin?"),
		Children: []ast.Node{
			&ast.Text{Base: ast.Base{Kind: ast.KindText}, Content: "yes"},
		},
	}
	out := PrintNode(node)
	require.Contains(t, out, "ERBIf")
	require.Contains(t, out, "admin?")
	require.Contains(t, out, "yes")
}
