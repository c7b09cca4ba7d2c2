package resource

// Widget is the data of one resource widget instance.
type Widget interface {
	Kind() Kind
	Evaluate() Evaluation
}

// Evaluation is the computed result of a widget, exportable as a printable report.
type Evaluation interface {
	Report() Report
}

// Defaults returns a fresh widget of the given kind holding its default data.
func Defaults(k Kind) (Widget, error) {
	switch k {
	case KindClientIntake:
		return defaultClientIntake(), nil
	case KindProtocolBuilder:
		return defaultProtocolBuilder(), nil
	case KindPricingCalculator:
		return defaultPricingCalculator(), nil
	case KindGutHealth:
		return defaultGutHealth(), nil
	case KindNutrition:
		return defaultNutrition(), nil
	case KindStress:
		return defaultStress(), nil
	case KindHormone:
		return defaultHormone(), nil
	case KindBloodSugar:
		return defaultBloodSugar(), nil
	case KindLabResults:
		return defaultLabResults(), nil
	case KindUnknown:
		return nil, ErrUnknownKind
	}
	return nil, ErrUnknownKind
}
