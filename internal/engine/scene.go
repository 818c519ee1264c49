package engine

// Scene is the flat list of renderable objects. Children are listed too;
// the parent links only describe transforms.
type Scene struct {
	Name        string
	GameObjects []*GameObject
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:        name,
		GameObjects: make([]*GameObject, 0),
	}
}

func (s *Scene) AddGameObject(g *GameObject) {
	g.Scene = s
	s.GameObjects = append(s.GameObjects, g)
}

// RemoveGameObject removes g and all of its descendants and cuts g loose
// from its parent.
func (s *Scene) RemoveGameObject(g *GameObject) {
	if g.Parent != nil {
		g.Parent.RemoveChild(g)
	}
	s.remove(g)
}

func (s *Scene) remove(g *GameObject) {
	for _, child := range g.Children {
		s.remove(child)
	}
	for i, obj := range s.GameObjects {
		if obj == g {
			s.GameObjects = append(s.GameObjects[:i], s.GameObjects[i+1:]...)
			break
		}
	}
	g.Scene = nil
}

func (s *Scene) FindByTag(tag string) []*GameObject {
	var result []*GameObject
	for _, g := range s.GameObjects {
		if g.HasTag(tag) {
			result = append(result, g)
		}
	}
	return result
}

func (s *Scene) Start() {
	for _, g := range s.GameObjects {
		g.Start()
	}
}

func (s *Scene) Update(deltaTime float32) {
	for _, g := range s.GameObjects {
		g.Update(deltaTime)
	}
}
