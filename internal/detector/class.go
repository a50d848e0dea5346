package detector

// Class is the classification of an environment name.
type Class string

const (
	// ClassProd is a production environment, ex. "prod", "01live".
	ClassProd Class = "prod"
	// ClassStage is a staging environment, ex. "stg", "02test".
	ClassStage Class = "stage"
	// ClassDev is a development environment, ex. "dev", "dev3".
	ClassDev Class = "dev"
	// ClassOnDemand is an on-demand (CDE) environment, ex. "ode1".
	ClassOnDemand Class = "ode"
	// ClassIDE is a cloud IDE environment.
	ClassIDE Class = "ide"
	// ClassUnknown is any name that matches no documented pattern.
	ClassUnknown Class = ""
)

// ClassifyName classifies an environment name. Well-formed names match at
// most one pattern; arbitrary names may match none and classify as
// ClassUnknown.
func ClassifyName(name string) Class {
	switch {
	case IsProdName(name):
		return ClassProd
	case IsStageName(name):
		return ClassStage
	case IsDevName(name):
		return ClassDev
	case IsOnDemandName(name):
		return ClassOnDemand
	case IsIDEName(name):
		return ClassIDE
	default:
		return ClassUnknown
	}
}

// String returns the string representation of the class.
func (c Class) String() string {
	return string(c)
}
