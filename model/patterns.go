package model

const blinkerPattern = `
-----
--x--
--x--
--x--
-----
`

const gosperPattern = `
---------------------------------------
--------------------------x------------
------------------------x-x------------
--------------xx------xx------------xx-
-------------x---x----xx------------xx-
--xx--------x-----x---xx---------------
--xx--------x---x-xx----x-x------------
------------x-----x-------x------------
-------------x---x---------------------
--------------xx-----------------------
---------------------------------------
`

// Blinker returns the 5x5 period-2 oscillator preset.
func Blinker() Board {
	return mustParse(blinkerPattern)
}

// Gosper returns the 39x11 Gosper glider gun preset. Composite it into
// a larger board with Add to give emitted gliders room to fly.
func Gosper() Board {
	return mustParse(gosperPattern)
}

// mustParse panics on invalid text; the preset patterns are constants,
// so a failure here is a programmer error.
func mustParse(pattern string) Board {
	b, err := Parse(pattern)
	if err != nil {
		panic(err)
	}
	return b
}
