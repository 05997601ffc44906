package pits

type Racer interface {
	Speed() float64
}

type Kart struct{}

func (k Kart) Speed() float64 { return 60 }

type Tractor struct{}

func (t *Tractor) Speed() float64 { return 25 }

type Snail struct{} // Speed has the wrong result type: not a Racer

func (s Snail) Speed() int { return 1 }

type Statue struct{} // no Speed at all
