package streams

// OnError selects how a stage reacts when its user function returns an
// error. The zero value picks the stage default: Raise everywhere except the
// evaluation stages (Eval, Map, Operate), which default to Keep so the
// failure can flow downstream to an Exc stage.
type OnError int

const (
	OnErrorDefault OnError = iota
	Raise                  // abort consumption with the error
	Discard                // drop the offending element silently
	Stop                   // end the stream at the offending element
	Keep                   // keep going: filters keep the element, evaluation stages emit a Failure
)

// String converts OnError enum into a string value
func (o OnError) String() string {
	switch o {
	case OnErrorDefault:
		return "DEFAULT"
	case Raise:
		return "RAISE"
	case Discard:
		return "DISCARD"
	case Stop:
		return "STOP"
	case Keep:
		return "KEEP"
	}
	return "INVALID"
}

// Params are used to pass args into Stream methods.
type Params struct {
	OnError   OnError
	Exclude   bool // Filter: keep elements failing the predicate instead
	Inclusive bool // StopWhen: yield the matching element before stopping
	Strict    bool // Zip: fail if the inputs have different lengths
}

func applyParams(params ...Params) Params {
	var p Params
	for _, param := range params {
		p = param
	}
	return p
}

// resolve validates the policy and substitutes the stage default for the
// zero value.
func (p Params) resolve(op string, def OnError) OnError {
	onErr := p.OnError
	if onErr == OnErrorDefault {
		onErr = def
	}
	if onErr < OnErrorDefault || onErr > Keep {
		panic(newValidationError(op, "invalid OnError policy"))
	}
	return onErr
}
