package cube

// turn is the facelet permutation of one quarter turn: dst[i] receives the color at src[i].
// 8 slots belong to the turning face's border ring, 12 to the three-facelet strips of
// its four neighbours. Centers are never listed.
type turn struct {
	src [20]uint8
	dst [20]uint8
}

// turns is indexed by [Face][Direction].
//
// Chunk layout: U 0-8, L 9-17, F 18-26, R 27-35, B 36-44, D 45-53, each row-major with
// the center at offset 4.
var turns = [6][2]turn{
	U: {
		CW: {
			src: [20]uint8{9, 10, 11, 18, 19, 20, 27, 28, 29, 36, 37, 38, 0, 1, 2, 5, 8, 7, 6, 3},
			dst: [20]uint8{36, 37, 38, 9, 10, 11, 18, 19, 20, 27, 28, 29, 2, 5, 8, 7, 6, 3, 0, 1},
		},
		CCW: {
			src: [20]uint8{9, 10, 11, 18, 19, 20, 27, 28, 29, 36, 37, 38, 0, 1, 2, 5, 8, 7, 6, 3},
			dst: [20]uint8{18, 19, 20, 27, 28, 29, 36, 37, 38, 9, 10, 11, 6, 3, 0, 1, 2, 5, 8, 7},
		},
	},
	D: {
		CW: {
			src: [20]uint8{45, 46, 47, 50, 53, 52, 51, 48, 15, 16, 17, 24, 25, 26, 33, 34, 35, 42, 43, 44},
			dst: [20]uint8{47, 50, 53, 52, 51, 48, 45, 46, 24, 25, 26, 33, 34, 35, 42, 43, 44, 15, 16, 17},
		},
		CCW: {
			src: [20]uint8{45, 46, 47, 50, 53, 52, 51, 48, 15, 16, 17, 24, 25, 26, 33, 34, 35, 42, 43, 44},
			dst: [20]uint8{51, 48, 45, 46, 47, 50, 53, 52, 42, 43, 44, 15, 16, 17, 24, 25, 26, 33, 34, 35},
		},
	},
	L: {
		CW: {
			src: [20]uint8{0, 3, 6, 18, 21, 24, 45, 48, 51, 38, 41, 44, 9, 10, 11, 12, 14, 15, 16, 17},
			dst: [20]uint8{18, 21, 24, 45, 48, 51, 44, 41, 38, 6, 3, 0, 11, 14, 17, 10, 16, 9, 12, 15},
		},
		CCW: {
			src: [20]uint8{0, 3, 6, 18, 21, 24, 45, 48, 51, 38, 41, 44, 9, 10, 11, 12, 14, 15, 16, 17},
			dst: [20]uint8{44, 41, 38, 0, 3, 6, 18, 21, 24, 51, 48, 45, 15, 12, 9, 16, 10, 17, 14, 11},
		},
	},
	R: {
		CW: {
			src: [20]uint8{2, 5, 8, 20, 23, 26, 47, 50, 53, 36, 39, 42, 27, 28, 29, 30, 32, 33, 34, 35},
			dst: [20]uint8{42, 39, 36, 2, 5, 8, 20, 23, 26, 53, 50, 47, 29, 32, 35, 28, 34, 27, 30, 33},
		},
		CCW: {
			src: [20]uint8{2, 5, 8, 20, 23, 26, 47, 50, 53, 36, 39, 42, 27, 28, 29, 30, 32, 33, 34, 35},
			dst: [20]uint8{20, 23, 26, 47, 50, 53, 42, 39, 36, 8, 5, 2, 33, 30, 27, 34, 28, 35, 32, 29},
		},
	},
	B: {
		CW: {
			src: [20]uint8{36, 37, 38, 41, 44, 43, 42, 39, 2, 1, 0, 9, 12, 15, 51, 52, 53, 35, 32, 29},
			dst: [20]uint8{38, 41, 44, 43, 42, 39, 36, 37, 9, 12, 15, 51, 52, 53, 35, 32, 29, 2, 1, 0},
		},
		CCW: {
			src: [20]uint8{36, 37, 38, 41, 44, 43, 42, 39, 2, 1, 0, 9, 12, 15, 51, 52, 53, 35, 32, 29},
			dst: [20]uint8{42, 39, 36, 37, 38, 41, 44, 43, 35, 32, 29, 2, 1, 0, 9, 12, 15, 51, 52, 53},
		},
	},
	F: {
		CW: {
			src: [20]uint8{18, 19, 20, 23, 26, 25, 24, 21, 6, 7, 8, 27, 30, 33, 47, 46, 45, 17, 14, 11},
			dst: [20]uint8{20, 23, 26, 25, 24, 21, 18, 19, 27, 30, 33, 47, 46, 45, 17, 14, 11, 6, 7, 8},
		},
		CCW: {
			src: [20]uint8{18, 19, 20, 23, 26, 25, 24, 21, 6, 7, 8, 27, 30, 33, 47, 46, 45, 17, 14, 11},
			dst: [20]uint8{24, 21, 18, 19, 20, 23, 26, 25, 17, 14, 11, 6, 7, 8, 27, 30, 33, 47, 46, 45},
		},
	},
}
