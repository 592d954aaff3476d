package asset

// DefaultLevel is the maze loaded when no level file is given. 9 columns by
// 7 rows, start on row 5 col 1, goal on row 1 col 7; wall pairs are col row.
//
//	#########
//	#.....#G#
//	#.###.#.#
//	#...#...#
//	###.###.#
//	#S......#
//	#########
const DefaultLevel = `# width height
9 7
# startRow startCol goalRow goalCol
5 1 1 7
# border
0 0
1 0
2 0
3 0
4 0
5 0
6 0
7 0
8 0
0 6
1 6
2 6
3 6
4 6
5 6
6 6
7 6
8 6
0 1
0 2
0 3
0 4
0 5
8 1
8 2
8 3
8 4
8 5
# interior
6 1
2 2
3 2
4 2
6 2
4 3
1 4
2 4
4 4
5 4
6 4
`
