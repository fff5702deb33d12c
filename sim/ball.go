package sim

import "strconv"

// Ball is the identity token dropped through a Tree. It carries no behavior.
type Ball struct {
	ID int
}

// NewBall returns the ball with the given id.
func NewBall(id int) Ball {
	return Ball{ID: id}
}

func (b Ball) String() string {
	return strconv.Itoa(b.ID)
}
