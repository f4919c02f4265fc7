package brochure

import (
	"bufio"
	"io"
	"strings"

	"github.com/muesli/reflow/indent"
)

const (
	minOutlineWidth = 20
	bulletPrefix    = "  • "
	bulletIndent    = 4
)

// WriteOutline prints the classified structure of blocks as plain text
// wrapped to width columns: "# " marks headings, "## " subheadings and "•"
// bullet items. Blocks are separated by a blank line.
func WriteOutline(w io.Writer, blocks []Block, width int) error {
	if width < minOutlineWidth {
		width = minOutlineWidth
	}
	bw := bufio.NewWriter(w)
	for i, b := range blocks {
		if i > 0 {
			bw.WriteByte('\n')
		}
		switch b.Role {
		case RoleHeading:
			writeLine(bw, truncateWithEllipsis("# "+oneLine(b.Text), width))
		case RoleSubheading:
			writeLine(bw, truncateWithEllipsis("## "+oneLine(b.Text), width))
		case RoleBullets:
			for _, item := range b.Items {
				wrapped := wrapText(item, width-bulletIndent)
				first, rest, _ := strings.Cut(wrapped, "\n")
				writeLine(bw, bulletPrefix+first)
				if rest != "" {
					writeLine(bw, indent.String(rest, bulletIndent))
				}
			}
		default:
			for _, line := range strings.Split(b.Text, "\n") {
				writeLine(bw, wrapText(line, width))
			}
		}
	}
	return bw.Flush()
}

func writeLine(bw *bufio.Writer, s string) {
	bw.WriteString(s)
	bw.WriteByte('\n')
}

// oneLine joins the lines of a multi-line heading with spaces.
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
