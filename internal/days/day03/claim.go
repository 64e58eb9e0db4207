// Package day03 indexes rectangular fabric claims on a shared grid.
package day03

import (
	"fmt"
	"regexp"
	"strconv"
)

// Claim is a rectangle requested on the fabric.
type Claim struct {
	ID     int
	Left   int
	Top    int
	Width  int
	Height int
}

// MaxExtent returns the exclusive right and bottom edges of c.
func (c Claim) MaxExtent() (right, bottom int) {
	return c.Left + c.Width, c.Top + c.Height
}

// Area is the number of cells c covers.
func (c Claim) Area() int {
	return c.Width * c.Height
}

// Extent calls fn for every (row, col) covered by c, row-major.
func (c Claim) Extent(fn func(row, col int)) {
	for row := c.Top; row < c.Top+c.Height; row++ {
		for col := c.Left; col < c.Left+c.Width; col++ {
			fn(row, col)
		}
	}
}

func (c Claim) String() string {
	return fmt.Sprintf("#%d @ %d,%d: %dx%d", c.ID, c.Left, c.Top, c.Width, c.Height)
}

// Parser reads claims of the form "#<id> @ <left>,<top>: <width>x<height>".
type Parser struct {
	re *regexp.Regexp
}

// NewParser compiles the claim pattern.
func NewParser() *Parser {
	return &Parser{re: regexp.MustCompile(`^#(\d+) @ (\d+),(\d+): (\d+)x(\d+)$`)}
}

// Parse parses one claim line.
func (p *Parser) Parse(line string) (Claim, error) {
	m := p.re.FindStringSubmatch(line)
	if m == nil {
		return Claim{}, fmt.Errorf("not a claim")
	}
	var fields [5]int
	for i := range fields {
		n, err := strconv.Atoi(m[i+1])
		if err != nil {
			return Claim{}, fmt.Errorf("field %d: %w", i+1, err)
		}
		fields[i] = n
	}
	return Claim{
		ID:     fields[0],
		Left:   fields[1],
		Top:    fields[2],
		Width:  fields[3],
		Height: fields[4],
	}, nil
}
