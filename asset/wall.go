package asset

// DefaultWallMesh is one wall block: a cube spanning [-1,1] on every axis, so
// it fills a cell footprint from the floor plane up to the ceiling when
// translated to the cell centre
const DefaultWallMesh = `# wall block
o wall
v -1 -1 -1
v 1 -1 -1
v 1 1 -1
v -1 1 -1
v -1 -1 1
v 1 -1 1
v 1 1 1
v -1 1 1
vt 0 0
vt 1 0
vt 1 1
vt 0 1
vn 1 0 0
vn -1 0 0
vn 0 1 0
vn 0 -1 0
vn 0 0 1
vn 0 0 -1
s off
# +z
f 5/1/5 6/2/5 7/3/5
f 5/1/5 7/3/5 8/4/5
# -z
f 2/1/6 1/2/6 4/3/6
f 2/1/6 4/3/6 3/4/6
# +x
f 6/1/1 2/2/1 3/3/1
f 6/1/1 3/3/1 7/4/1
# -x
f 1/1/2 5/2/2 8/3/2
f 1/1/2 8/3/2 4/4/2
# +y
f 8/1/3 7/2/3 3/3/3
f 8/1/3 3/3/3 4/4/3
# -y
f 1/1/4 2/2/4 6/3/4
f 1/1/4 6/3/4 5/4/4
`
