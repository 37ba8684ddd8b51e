package algorithms

// Constructor builds one estimator from the shared problem size.
type Constructor func(n, m int, opts ...Option) (Estimator, error)

// Registration binds an algorithm name to its constructor.
type Registration struct {
	Name string
	New  Constructor
}

func wrap[E Estimator](f func(n, m int, opts ...Option) (E, error)) Constructor {
	return func(n, m int, opts ...Option) (Estimator, error) {
		e, err := f(n, m, opts...)
		if err != nil {
			return nil, err
		}
		return e, nil
	}
}

var registry = []Registration{
	{Name: "F5", New: wrap(NewF5)},
	{Name: "HybridF5", New: wrap(NewHybridF5)},
	{Name: "DinurFirst", New: wrap(NewDinurFirst)},
	{Name: "DinurSecond", New: wrap(NewDinurSecond)},
	{Name: "ExhaustiveSearch", New: wrap(NewExhaustiveSearch)},
	{Name: "Bjorklund", New: wrap(NewBjorklund)},
	{Name: "Lokshtanov", New: wrap(NewLokshtanov)},
	{Name: "BooleanSolveFXL", New: wrap(NewBooleanSolveFXL)},
	{Name: "Crossbred", New: wrap(NewCrossbred)},
	{Name: "CGMTA", New: wrap(NewCGMTA)},
	{Name: "KPG", New: wrap(NewKPG)},
	{Name: "MHT", New: wrap(NewMHT)},
}

// Registered returns every known algorithm in reporting order.
func Registered() []Registration {
	return append([]Registration(nil), registry...)
}

// Lookup returns the registration with the given name.
func Lookup(name string) (Registration, bool) {
	for _, r := range registry {
		if r.Name == name {
			return r, true
		}
	}
	return Registration{}, false
}
