package penalty

type SweepOutput struct {
	Applied int
	Skipped int
	Failed  int
}

type ResolveOutput struct {
	Resolved int64
}
