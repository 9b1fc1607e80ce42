package scenes

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// Closer is implemented by scenes that hold resources past their last frame.
type Closer interface {
	Close()
}
