package main

import "github.com/puzzlekit/aoc"

const pruneMod = 16777216

func nextSecret(n int) int {
	n = (n ^ n*64) % pruneMod
	n = (n ^ n/32) % pruneMod
	n = (n ^ n*2048) % pruneMod
	return n
}

func evolve(n, rounds int) int {
	for i := 0; i < rounds; i++ {
		n = nextSecret(n)
	}
	return n
}

// changeKey packs four consecutive price changes, each in [-9, 9].
func changeKey(c [4]int) int {
	k := 0
	for _, d := range c {
		k = k*19 + d + 9
	}
	return k
}

// firstSales maps each sequence of four price changes to the price the
// buyer sells at the first time that sequence appears.
func firstSales(secret, rounds int) map[int]int {
	sales := make(map[int]int)
	var changes [4]int
	price := secret % 10
	for i := 0; i < rounds; i++ {
		secret = nextSecret(secret)
		p := secret % 10
		copy(changes[:], changes[1:])
		changes[3] = p - price
		price = p
		if i < 3 {
			continue
		}
		k := changeKey(changes)
		if _, ok := sales[k]; !ok {
			sales[k] = p
		}
	}
	return sales
}

// mostBananas returns the most bananas a single sequence of four price
// changes can buy across all buyers.
func mostBananas(secrets []int, rounds int) int {
	total := aoc.ParallelMapFold(secrets, func(s int) map[int]int {
		return firstSales(s, rounds)
	}, func(acc map[int]int, sales map[int]int) map[int]int {
		for k, v := range sales {
			acc[k] += v
		}
		return acc
	}, make(map[int]int))
	best := 0
	for _, v := range total {
		best = max(best, v)
	}
	return best
}

/*
want=37327623

1
10
100
2024
*/
func (s solver) D22p1() any {
	return aoc.Sum(aoc.Parallel(aoc.Ints(s.Lines()...), func(n int) int {
		return evolve(n, 2000)
	})...)
}

/*
want=23

1
2
3
2024
*/
func (s solver) D22p2() any {
	return mostBananas(aoc.Ints(s.Lines()...), 2000)
}
