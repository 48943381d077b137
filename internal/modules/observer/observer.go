package observer

type Observer interface {
	Update(event int, data interface{})
}

type Subject interface {
	Notify(event int, data interface{})
}
