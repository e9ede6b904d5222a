package meshbench

// Node is a vertex of the triangulation in image coordinates.
type Node struct {
	X, Y float64
}

func (n Node) isEq(p Node) bool {
	return n.X == p.X && n.Y == p.Y
}

type circle struct {
	x, y, radius float64
}

// edge joins two node indices, stored with the smaller index first.
type edge [2]int

func newEdge(a, b int) edge {
	if a > b {
		a, b = b, a
	}
	return edge{a, b}
}

// Triangle references three nodes of the point set it was built from.
type Triangle struct {
	Nodes  [3]int
	circle circle
}

func newTriangle(nodes []Node, a, b, c int) Triangle {
	t := Triangle{Nodes: [3]int{a, b, c}}
	p0, p1, p2 := nodes[a], nodes[b], nodes[c]

	ax, ay := p1.X-p0.X, p1.Y-p0.Y
	bx, by := p2.X-p0.X, p2.Y-p0.Y
	m := ax*(p1.X+p0.X) + ay*(p1.Y+p0.Y)
	u := bx*(p2.X+p0.X) + by*(p2.Y+p0.Y)
	s := 1.0 / (2.0 * (ax*by - ay*bx))

	t.circle.x = (by*m - ay*u) * s
	t.circle.y = (ax*u - bx*m) * s

	dx := p0.X - t.circle.x
	dy := p0.Y - t.circle.y
	t.circle.radius = dx*dx + dy*dy

	return t
}

func (t Triangle) edges() [3]edge {
	return [3]edge{
		newEdge(t.Nodes[0], t.Nodes[1]),
		newEdge(t.Nodes[1], t.Nodes[2]),
		newEdge(t.Nodes[2], t.Nodes[0]),
	}
}

// Centroid returns the mean position of the triangle's vertices.
func (t Triangle) Centroid(nodes []Node) Node {
	p0, p1, p2 := nodes[t.Nodes[0]], nodes[t.Nodes[1]], nodes[t.Nodes[2]]
	return Node{
		X: (p0.X + p1.X + p2.X) / 3,
		Y: (p0.Y + p1.Y + p2.Y) / 3,
	}
}

// Area returns the unsigned area of the triangle.
func (t Triangle) Area(nodes []Node) float64 {
	p0, p1, p2 := nodes[t.Nodes[0]], nodes[t.Nodes[1]], nodes[t.Nodes[2]]
	a := cross(p0, p1, p2) / 2
	if a < 0 {
		a = -a
	}
	return a
}

func (t Triangle) inCircle(p Node) bool {
	dx := t.circle.x - p.X
	dy := t.circle.y - p.Y
	return dx*dx+dy*dy < t.circle.radius
}

// cross is twice the signed area of the triangle abc.
func cross(a, b, c Node) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// Delaunay builds a Delaunay triangulation of points inside a width×height
// rectangle using incremental Bowyer-Watson insertion. The rectangle corners
// seed the mesh, so the hull always matches the rectangle.
type Delaunay struct {
	width     float64
	height    float64
	nodes     []Node
	triangles []Triangle
}

// Init resets the triangulation to the two triangles splitting the rectangle.
func (d *Delaunay) Init(width, height int) *Delaunay {
	d.width = float64(width)
	d.height = float64(height)

	d.nodes = nil
	d.triangles = nil
	d.clear()

	return d
}

func (d *Delaunay) clear() {
	d.nodes = append(d.nodes,
		Node{0, 0},
		Node{d.width, 0},
		Node{d.width, d.height},
		Node{0, d.height},
	)
	d.triangles = append(d.triangles,
		newTriangle(d.nodes, 0, 2, 3),
		newTriangle(d.nodes, 0, 1, 2),
	)
}

// Insert adds the points to the triangulation. Points already present and
// points outside the rectangle are ignored.
func (d *Delaunay) Insert(points []Node) *Delaunay {
	for _, p := range points {
		d.insert(p)
	}
	return d
}

func (d *Delaunay) insert(p Node) {
	if p.X < 0 || p.Y < 0 || p.X > d.width || p.Y > d.height {
		return
	}

	var (
		bad   []Triangle
		temps = make([]Triangle, 0, len(d.triangles)+2)
	)
	for _, t := range d.triangles {
		if t.inCircle(p) {
			bad = append(bad, t)
		} else {
			temps = append(temps, t)
		}
	}
	// An existing vertex lies on, never inside, the circles around it.
	if len(bad) == 0 {
		return
	}
	for _, t := range bad {
		for _, n := range t.Nodes {
			if d.nodes[n].isEq(p) {
				return
			}
		}
	}

	// Edges shared by two cavity triangles are interior; the rest bound the
	// polygonal hole left by removing them.
	count := make(map[edge]int, len(bad)*3)
	for _, t := range bad {
		for _, e := range t.edges() {
			count[e]++
		}
	}

	idx := len(d.nodes)
	d.nodes = append(d.nodes, p)

	for _, t := range bad {
		for _, e := range t.edges() {
			if count[e] != 1 {
				continue
			}
			// A point lying on a hull edge would form a flat triangle with it.
			if cross(d.nodes[e[0]], d.nodes[e[1]], p) == 0 {
				continue
			}
			temps = append(temps, newTriangle(d.nodes, e[0], e[1], idx))
		}
	}
	d.triangles = temps
}

// GetTriangles returns the current triangles.
func (d *Delaunay) GetTriangles() []Triangle {
	return d.triangles
}

// GetNodes returns the vertices referenced by the triangles.
func (d *Delaunay) GetNodes() []Node {
	return d.nodes
}
