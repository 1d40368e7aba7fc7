package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var lanSample = strings.Fields(`
kh-tc qp-kh de-cg ka-co yn-aq qp-ub cg-tb vc-aq tb-ka wh-tc yn-cg kh-ub
ta-co de-co tc-td tb-wq wh-td ta-ka td-qp aq-cg wq-ub ub-vc de-ta wq-aq
wq-vc wh-yn ka-de kh-ta co-tc wh-qp tb-vc td-yn
`)

func TestLANParty(t *testing.T) {
	g := parseLAN(lanSample)
	assert.Len(t, g.Nodes, 16)
	assert.Len(t, g.Triangles(), 12)
	assert.Equal(t, 7, historianTriangles(g))
	assert.Equal(t, "co,de,ka,ta", lanPassword(g))
}

func TestLANPasswordSmall(t *testing.T) {
	g := parseLAN([]string{"zz-aa", "aa-mm", "mm-zz", "mm-tx"})
	assert.Equal(t, "aa,mm,zz", lanPassword(g))
	assert.Equal(t, 0, historianTriangles(g))
}
