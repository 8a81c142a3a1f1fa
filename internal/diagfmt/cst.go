package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"tagattr/internal/cst"
)

func cstNode(n *cst.Node, withText bool) *treeNode {
	label := fmt.Sprintf("%s [%d,%d)", n.Rule, n.Span.Start, n.Span.End)
	if withText && (len(n.Children) == 0 || n.Rule == cst.RuleComment) {
		label += fmt.Sprintf(" %q", n.Text)
	}
	out := &treeNode{label: label}
	for _, c := range n.Children {
		out.children = append(out.children, cstNode(c, withText))
	}
	return out
}

// FormatCSTPretty печатает конкретное дерево с отступами; у листьев: текст.
func FormatCSTPretty(w io.Writer, tree *cst.Node) error {
	if tree == nil {
		return fmt.Errorf("no tree")
	}
	return writeTree(w, cstNode(tree, true), "", true, true)
}

// FormatCSTGraph рисует дерево сверху вниз, дети под родителем.
func FormatCSTGraph(w io.Writer, tree *cst.Node) error {
	if tree == nil {
		return fmt.Errorf("no tree")
	}
	block := renderTree(cstNode(tree, false))
	for _, line := range block.lines {
		if _, err := fmt.Fprintln(w, strings.TrimRight(line, " ")); err != nil {
			return err
		}
	}
	return nil
}

type treeBlock struct {
	lines []string
	width int
	root  int // колонка, под которой стоит корень
}

func padRight(s string, width int) string {
	if w := runewidth.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// renderTree раскладывает детей в ряд с отступом spacing и ставит корень
// над их серединой; вторая строка блока: соединители / | \.
func renderTree(node *treeNode) treeBlock {
	label := node.label
	labelWidth := runewidth.StringWidth(label)

	if len(node.children) == 0 {
		return treeBlock{lines: []string{label}, width: labelWidth, root: labelWidth / 2}
	}

	const spacing = 3

	childBlocks := make([]treeBlock, len(node.children))
	maxChildHeight := 0
	for i, child := range node.children {
		childBlocks[i] = renderTree(child)
		maxChildHeight = max(maxChildHeight, len(childBlocks[i].lines))
	}

	positions := make([]int, len(childBlocks))
	childrenWidth := 0
	for i, block := range childBlocks {
		if i > 0 {
			childrenWidth += spacing
		}
		positions[i] = childrenWidth + block.root
		childrenWidth += block.width
	}

	// сдвигаем либо корень, либо детей, чтобы корень встал над серединой
	center := (positions[0] + positions[len(positions)-1]) / 2
	rootPos := labelWidth / 2
	labelShift, childShift := 0, 0
	if center >= rootPos {
		labelShift = center - rootPos
	} else {
		childShift = rootPos - center
	}
	rootPos += labelShift
	for i := range positions {
		positions[i] += childShift
	}
	width := max(labelShift+labelWidth, childShift+childrenWidth, rootPos+1)

	connector := []byte(strings.Repeat(" ", width))
	connector[rootPos] = '|'
	for _, pos := range positions {
		switch {
		case pos < rootPos:
			connector[pos] = '/'
		case pos > rootPos:
			connector[pos] = '\\'
		}
	}

	lines := make([]string, 0, 2+maxChildHeight)
	lines = append(lines, padRight(strings.Repeat(" ", labelShift)+label, width), string(connector))
	for row := range maxChildHeight {
		var sb strings.Builder
		sb.WriteString(strings.Repeat(" ", childShift))
		for i, block := range childBlocks {
			if i > 0 {
				sb.WriteString(strings.Repeat(" ", spacing))
			}
			line := ""
			if row < len(block.lines) {
				line = block.lines[row]
			}
			sb.WriteString(padRight(line, block.width))
		}
		lines = append(lines, padRight(sb.String(), width))
	}

	return treeBlock{lines: lines, width: width, root: rootPos}
}
