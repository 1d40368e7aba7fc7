package main

// span is a run of blocks on the disk.
type span struct {
	pos, len int
}

// parseDiskMap returns the spans of each file, indexed by file ID, and of
// the free space between them.
func parseDiskMap(dm string) (files, free []span) {
	pos := 0
	for i := 0; i < len(dm); i++ {
		n := int(dm[i] - '0')
		if n > 9 {
			panic("bad disk map digit: " + string(dm[i]))
		}
		if i%2 == 0 {
			files = append(files, span{pos, n})
		} else {
			free = append(free, span{pos, n})
		}
		pos += n
	}
	return files, free
}

// compactBlocks moves file blocks one at a time from the end of the disk
// to the leftmost free block and returns the resulting checksum.
func compactBlocks(files []span) int {
	var disk []int
	for id, f := range files {
		for len(disk) < f.pos {
			disk = append(disk, -1)
		}
		for i := 0; i < f.len; i++ {
			disk = append(disk, id)
		}
	}
	l, r := 0, len(disk)-1
	for {
		for l < r && disk[l] != -1 {
			l++
		}
		for l < r && disk[r] == -1 {
			r--
		}
		if l >= r {
			break
		}
		disk[l], disk[r] = disk[r], -1
	}
	sum := 0
	for i, id := range disk {
		if id > 0 {
			sum += i * id
		}
	}
	return sum
}

// compactFiles moves whole files, highest ID first, to the leftmost free
// span that fits them, and returns the resulting checksum.
func compactFiles(files, free []span) int {
	files, free = append([]span(nil), files...), append([]span(nil), free...)
	for id := len(files) - 1; id >= 0; id-- {
		f := &files[id]
		for i := range free {
			sp := &free[i]
			if sp.pos >= f.pos {
				break
			}
			if sp.len >= f.len {
				f.pos = sp.pos
				sp.pos += f.len
				sp.len -= f.len
				break
			}
		}
	}
	sum := 0
	for id, f := range files {
		for i := 0; i < f.len; i++ {
			sum += (f.pos + i) * id
		}
	}
	return sum
}

/*
want=1928

2333133121414131402
*/
func (s solver) D9p1() any {
	files, _ := parseDiskMap(s.Text())
	return compactBlocks(files)
}

// want=2858
func (s solver) D9p2() any {
	return compactFiles(parseDiskMap(s.Text()))
}
