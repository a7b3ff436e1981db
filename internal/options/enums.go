package options

// AlignKey selects the component alignment for deconvolution.
type AlignKey string

const (
	AlignZRT AlignKey = "ZRT"
	AlignLQT AlignKey = "LQT"
	AlignPVH AlignKey = "PVH"
)

// parseAlign checks the alignment key; an empty value resolves to ZRT.
func parseAlign(raw string) (AlignKey, error) {
	if raw == "" {
		return AlignZRT, nil
	}
	switch a := AlignKey(raw); a {
	case AlignZRT, AlignLQT, AlignPVH:
		return a, nil
	}
	return "", invalidf("--align", "alignment should be either ZRT, LQT or PVH, got %q", raw)
}

// DeconMethod selects the deconvolution algorithm.
type DeconMethod string

const (
	MethodWiener     DeconMethod = "wiener"
	MethodWater      DeconMethod = "water"
	MethodMultitaper DeconMethod = "multitaper"
)

func parseMethod(raw string) (DeconMethod, error) {
	switch m := DeconMethod(raw); m {
	case MethodWiener, MethodWater, MethodMultitaper:
		return m, nil
	}
	return "", invalidf("--method", "method should be either wiener, water or multitaper, got %q", raw)
}

// StackType selects how the final H-k stack is combined.
type StackType string

const (
	StackSum  StackType = "sum"
	StackProd StackType = "prod"
)

func parseStackType(raw string) (StackType, error) {
	switch s := StackType(raw); s {
	case StackSum, StackProd:
		return s, nil
	}
	return "", invalidf("--type", "stacking type should be either sum or prod, got %q", raw)
}
