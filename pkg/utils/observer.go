package utils

//go:generate mockgen -source=observer.go -destination=mock/observer.go -package=mock

// Observer reacts to notifications carrying a T, usually the subject itself.
type Observer[T any] interface {
	Update(T)
}

// Subject keeps an ordered set of observers and notifies them in that order.
type Subject[T any] interface {
	Attach(Observer[T])
	Detach(Observer[T]) error
	Notify()
}
