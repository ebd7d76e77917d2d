// Package maptest provides reference maps for tests across waypath.
package maptest

import (
	"slices"

	"github.com/katalvlaran/waypath/geom"
	"github.com/katalvlaran/waypath/roadmap"
)

// map40Intersections holds the coordinates of the 40-intersection reference map.
var map40Intersections = []geom.Coordinate{
	{X: 0.7801603911549438, Y: 0.49474860768712914},  // 0
	{X: 0.5249831588690298, Y: 0.14953665513987202},  // 1
	{X: 0.8085335344099086, Y: 0.7696330846542071},   // 2
	{X: 0.2599134798656856, Y: 0.14485659826020547},  // 3
	{X: 0.7353838928272886, Y: 0.8089961609345658},   // 4
	{X: 0.09088671576431506, Y: 0.7222846879290787},  // 5
	{X: 0.313999018186756, Y: 0.01876171413125327},   // 6
	{X: 0.6824813442515916, Y: 0.8016111783687677},   // 7
	{X: 0.20128789391122526, Y: 0.43196344222361227}, // 8
	{X: 0.8551947714242674, Y: 0.9011339078096633},   // 9
	{X: 0.7581736589784409, Y: 0.24026772497187532},  // 10
	{X: 0.25311953895059136, Y: 0.10321622277398101}, // 11
	{X: 0.4813859169876731, Y: 0.5006237737207431},   // 12
	{X: 0.9112422509614865, Y: 0.1839028760606296},   // 13
	{X: 0.04580558670435442, Y: 0.5886703168399895},  // 14
	{X: 0.4582523173083307, Y: 0.1735506267461867},   // 15
	{X: 0.12939557977525573, Y: 0.690016328140396},   // 16
	{X: 0.607698913404794, Y: 0.362322730884702},     // 17
	{X: 0.719569201584275, Y: 0.13985272363426526},   // 18
	{X: 0.8860336256842246, Y: 0.891868301175821},    // 19
	{X: 0.4238357358399233, Y: 0.026771817842421997}, // 20
	{X: 0.8252497121120052, Y: 0.9532681441921305},   // 21
	{X: 0.47415009287034726, Y: 0.7353428557575755},  // 22
	{X: 0.26253385360950576, Y: 0.9768234503830939},  // 23
	{X: 0.9363713903322148, Y: 0.13022993020357043},  // 24
	{X: 0.6243437191127235, Y: 0.21665962402659544},  // 25
	{X: 0.5572917679006295, Y: 0.2083567880838434},   // 26
	{X: 0.7482655725962591, Y: 0.12631654071213483},  // 27
	{X: 0.6435799740880603, Y: 0.5488515965193208},   // 28
	{X: 0.34509802713919313, Y: 0.8800306496459869},  // 29
	{X: 0.021423673670808885, Y: 0.4666482714834408}, // 30
	{X: 0.640952694324525, Y: 0.3232711412508066},    // 31
	{X: 0.17440205342790494, Y: 0.9528527425842739},  // 32
	{X: 0.1332965908314021, Y: 0.3996510641743197},   // 33
	{X: 0.583993110207876, Y: 0.42704536740474663},   // 34
	{X: 0.3073865727705063, Y: 0.09186645974288632},  // 35
	{X: 0.740625863119245, Y: 0.68128520136847},      // 36
	{X: 0.3345284735051981, Y: 0.6569436279895382},   // 37
	{X: 0.17972981733780147, Y: 0.999395685828547},   // 38
	{X: 0.6315322816286787, Y: 0.7311657634689946},   // 39
}

// map40Roads holds the adjacency lists of the reference map, indexed by id.
var map40Roads = [][]int{
	{36, 34, 31, 28, 17},                           // 0
	{35, 31, 27, 26, 25, 20, 18, 17, 15, 6},        // 1
	{39, 36, 21, 19, 9, 7, 4},                      // 2
	{35, 20, 15, 11, 6},                            // 3
	{39, 36, 21, 19, 9, 7, 2},                      // 4
	{32, 16, 14},                                   // 5
	{35, 20, 15, 11, 1, 3},                         // 6
	{39, 36, 22, 21, 19, 9, 2, 4},                  // 7
	{33, 30, 14},                                   // 8
	{36, 21, 19, 2, 4, 7},                          // 9
	{31, 27, 26, 25, 24, 18, 17, 13},               // 10
	{35, 20, 15, 3, 6},                             // 11
	{37, 34, 31, 28, 22, 17},                       // 12
	{27, 24, 18, 10},                               // 13
	{33, 30, 16, 5, 8},                             // 14
	{35, 31, 26, 25, 20, 17, 1, 3, 6, 11},          // 15
	{37, 30, 5, 14},                                // 16
	{34, 31, 28, 26, 25, 18, 0, 1, 10, 12, 15},     // 17
	{31, 27, 26, 25, 24, 1, 10, 13, 17},            // 18
	{21, 2, 4, 7, 9},                               // 19
	{35, 26, 1, 3, 6, 11, 15},                      // 20
	{2, 4, 7, 9, 19},                               // 21
	{39, 37, 29, 7, 12},                            // 22
	{38, 32, 29},                                   // 23
	{27, 10, 13, 18},                               // 24
	{34, 31, 27, 26, 1, 10, 15, 17, 18},            // 25
	{34, 31, 27, 1, 10, 15, 17, 18, 20, 25},        // 26
	{31, 1, 10, 13, 18, 24, 25, 26},                // 27
	{39, 36, 34, 31, 0, 12, 17},                    // 28
	{38, 37, 32, 22, 23},                           // 29
	{33, 8, 14, 16},                                // 30
	{34, 0, 1, 10, 12, 15, 17, 18, 25, 26, 27, 28}, // 31
	{38, 5, 23, 29},                                // 32
	{8, 14, 30},                                    // 33
	{0, 12, 17, 25, 26, 28, 31},                    // 34
	{1, 3, 6, 11, 15, 20},                          // 35
	{39, 0, 2, 4, 7, 9, 28},                        // 36
	{12, 16, 22, 29},                               // 37
	{23, 29, 32},                                   // 38
	{2, 4, 7, 22, 28, 36},                          // 39
}

// Map40 builds the 40-intersection reference map. It panics on error,
// which can only happen if the tables above are edited incorrectly.
func Map40() *roadmap.Map {
	m, err := roadmap.FromSlices(map40Intersections, map40Roads)
	if err != nil {
		panic(err)
	}

	return m
}

// Map40Intersections returns a copy of the reference map's coordinates,
// indexed by id.
func Map40Intersections() []geom.Coordinate {
	return slices.Clone(map40Intersections)
}

// Map40Roads returns a deep copy of the reference map's adjacency lists,
// indexed by id.
func Map40Roads() [][]int {
	out := make([][]int, len(map40Roads))
	for i, row := range map40Roads {
		out[i] = slices.Clone(row)
	}

	return out
}
