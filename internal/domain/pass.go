package domain

// PassRequest is one row of the master file, read once at batch start and
// never mutated. PassNumber is unique per run by convention only; duplicates
// simply regenerate the same pass.
type PassRequest struct {
	PassNumber    string
	FirstName     string
	Email         string
	Department    string
	Generate      bool
	VehicleCount  int
	StartRaw      string
	EndRaw        string
	AdditionalLot string
	Event         string
	AccessCode    string
}
