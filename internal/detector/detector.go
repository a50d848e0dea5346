package detector

import (
	"io"
	"log/slog"
	"regexp"
	"strings"
	"text/template"

	"github.com/gkampitakis/ciinfo"

	"github.com/grasmash/drupal-environment-detector/internal/system"
)

// Environment variables set on every hosted environment.
const (
	// SiteGroupVar holds the hosting customer/subscription identifier.
	SiteGroupVar = "AH_SITE_GROUP"
	// SiteEnvironmentVar holds the environment short name, ex. "dev", "stg",
	// "prod", "01dev", "ode1", "IDE".
	SiteEnvironmentVar = "AH_SITE_ENVIRONMENT"
	// RealmVar holds the hosting realm/region identifier.
	RealmVar = "AH_REALM"
	// NonProductionVar holds an opaque non-production flag.
	NonProductionVar = "AH_NON_PRODUCTION"
	// ApplicationUUIDVar holds an opaque application identifier.
	ApplicationUUIDVar = "AH_APPLICATION_UUID"
)

// devCloudRealm is the realm name of the self-service hosting tier.
const devCloudRealm = "devcloud"

// filesRoot is the mount point under which every environment keeps its files
// directory, as "{group}.{env}".
const filesRoot = "/mnt/files"

// Name patterns are anchored to the full string so tokens that merely contain
// "dev" or "test" never classify.
var (
	prodNamePattern     = regexp.MustCompile(`^\d*live$`)
	stageNamePattern    = regexp.MustCompile(`^\d*test$`)
	devNamePattern      = regexp.MustCompile(`^\d*dev\d*$`)
	onDemandNamePattern = regexp.MustCompile(`^ode\d*$`)
)

// IsProdName reports whether name is a production environment name, ex.
// "prod", "live", "01live".
func IsProdName(name string) bool {
	return name == "prod" || prodNamePattern.MatchString(name)
}

// IsStageName reports whether name is a staging environment name, ex. "test",
// "02test", "stg", "stage".
func IsStageName(name string) bool {
	return name == "stg" || name == "stage" || stageNamePattern.MatchString(name)
}

// IsDevName reports whether name is a development environment name, ex.
// "dev", "01dev", "dev3".
func IsDevName(name string) bool {
	return devNamePattern.MatchString(name)
}

// IsOnDemandName reports whether name is an on-demand (CDE) environment name,
// ex. "ode1".
func IsOnDemandName(name string) bool {
	return onDemandNamePattern.MatchString(name)
}

// IsIDEName reports whether name is a cloud IDE environment name, matched
// case-insensitively.
func IsIDEName(name string) bool {
	return strings.ToLower(name) == "ide"
}

// Detector answers questions about the hosting environment of the current
// process. Every call reads the environment fresh; nothing is cached and all
// methods are safe for concurrent use.
type Detector struct {
	env    system.Environment
	fs     system.FileSystem
	stdOut io.Writer
}

// NewDetector creates a new Detector.
func NewDetector(
	env system.Environment,
	fs system.FileSystem,
	stdOut io.Writer,
) *Detector {
	return &Detector{
		env:    env,
		fs:     fs,
		stdOut: stdOut,
	}
}

// Group returns the hosting site group, or the empty string when not hosted.
func (d *Detector) Group() string {
	return d.env.Get(SiteGroupVar)
}

// EnvironmentName returns the environment short name, or the empty string
// when not hosted.
func (d *Detector) EnvironmentName() string {
	return d.env.Get(SiteEnvironmentVar)
}

// Realm returns the hosting realm, or the empty string when unset.
func (d *Detector) Realm() string {
	return d.env.Get(RealmVar)
}

// NonProductionFlag returns the raw non-production flag. The value is not
// interpreted; callers decide what it means.
func (d *Detector) NonProductionFlag() string {
	return d.env.Get(NonProductionVar)
}

// ApplicationID returns the raw application identifier.
func (d *Detector) ApplicationID() string {
	return d.env.Get(ApplicationUUIDVar)
}

// IsHosted reports whether the process runs on a hosted environment, i.e. an
// environment name is set.
func (d *Detector) IsHosted() bool {
	return d.EnvironmentName() != ""
}

// IsLocal reports whether the process runs outside any hosted environment.
func (d *Detector) IsLocal() bool {
	return !d.IsHosted()
}

// IsProd reports whether the current environment is a production environment.
func (d *Detector) IsProd() bool {
	return IsProdName(d.EnvironmentName())
}

// IsStage reports whether the current environment is a staging environment.
func (d *Detector) IsStage() bool {
	return IsStageName(d.EnvironmentName())
}

// IsDev reports whether the current environment is a development environment.
func (d *Detector) IsDev() bool {
	return IsDevName(d.EnvironmentName())
}

// IsOnDemand reports whether the current environment is an on-demand (CDE)
// environment.
func (d *Detector) IsOnDemand() bool {
	return IsOnDemandName(d.EnvironmentName())
}

// IsIDE reports whether the current environment is a cloud IDE.
func (d *Detector) IsIDE() bool {
	return IsIDEName(d.EnvironmentName())
}

// IsDevCloudRealm reports whether the current environment runs on the
// self-service hosting tier.
func (d *Detector) IsDevCloudRealm() bool {
	return d.Realm() == devCloudRealm
}

// IsCI reports whether the process runs on a continuous-integration
// executor.
func (d *Detector) IsCI() bool {
	return ciinfo.IsCI
}

// CIName returns the name of the detected continuous-integration executor,
// or the empty string when none is detected.
func (d *Detector) CIName() string {
	return ciinfo.Name
}

// FilesRootPath returns the files directory of the current environment. The
// path is derived unconditionally; callers must validate that both the group
// and the environment name are set before trusting it.
func (d *Detector) FilesRootPath() string {
	return FilesRootPathFor(d.Group(), d.EnvironmentName())
}

// FilesRootPathFor returns the files directory for the given group and
// environment name.
func FilesRootPathFor(group, env string) string {
	return filesRoot + "/" + group + "." + env
}

// multiSiteMarkerPath returns the path of the marker file whose presence
// identifies a multi-site factory environment.
func multiSiteMarkerPath(group, env string) string {
	return FilesRootPathFor(group, env) + "/files-private/sites.json"
}

// IsMultiSiteFactory reports whether the given group and environment name
// identify a multi-site factory environment. It is false when either part is
// empty, without touching the file system; otherwise it checks the marker
// file. An inaccessible marker path reads as not a factory.
func (d *Detector) IsMultiSiteFactory(group, env string) bool {
	if group == "" || env == "" {
		return false
	}

	return d.fs.FileExists(multiSiteMarkerPath(group, env))
}

// IsMultiSiteFactoryEnv reports whether the current environment is a
// multi-site factory environment.
func (d *Detector) IsMultiSiteFactoryEnv() bool {
	return d.IsMultiSiteFactory(d.Group(), d.EnvironmentName())
}

// MultiSiteDBName returns the per-site database name from the given site
// settings. It reports false when no settings context is present, when the
// settings do not carry a database name, or when the current environment is
// not a multi-site factory. An absent name is the false report, never an
// empty string.
func (d *Detector) MultiSiteDBName(settings *SiteSettings) (string, bool) {
	if !d.IsMultiSiteFactoryEnv() {
		return "", false
	}

	return settings.MultisiteDBName()
}

// SiteName resolves the canonical site name for the given site path. On a
// multi-site factory environment it is the per-site database name from the
// settings context, absent when that context is missing. Everywhere else it
// is the site path with one leading "sites/" prefix stripped.
func (d *Detector) SiteName(settings *SiteSettings, sitePath string) (string, bool) {
	if d.IsMultiSiteFactoryEnv() {
		return d.MultiSiteDBName(settings)
	}

	return strings.TrimPrefix(sitePath, "sites/"), true
}

const (
	// infoTemplate is the template for the info command.
	infoTemplate = `Hosted        {{if .Hosted}}yes{{else}}no (local){{end}}
{{- if .Hosted}}
Group         {{if .Group}}{{.Group}}{{else}}<unset>{{end}}
Environment   {{.Environment}}
Class         {{if .Class}}{{.Class}}{{else}}<unrecognized>{{end}}
Realm         {{if .Realm}}{{.Realm}}{{else}}<unset>{{end}}
Files Root    {{.FilesRoot}}
Multi-site    {{if .MultiSiteFactory}}factory{{else}}no{{end}}
{{- if .MultiSiteFactory}}
DB Name       {{if .DBNameOK}}{{.DBName}}{{else}}<absent>{{end}}
{{- end}}
Non-prod      {{if .NonProduction}}{{.NonProduction}}{{else}}<unset>{{end}}
App UUID      {{if .ApplicationID}}{{.ApplicationID}}{{else}}<unset>{{end}}
{{- end}}
CI            {{if .CI}}{{.CIName}}{{else}}no{{end}}
`

	// classifyTemplate is the template for the classify command.
	classifyTemplate = `{{printf "%q" .Name}} → {{if .Class}}{{.Class}}{{else}}<unrecognized>{{end}}
`
)

// PrintInfo prints every detected value of the current environment to the
// standard output (or another defined io.Writer). On a multi-site factory
// environment the per-site database name from the given settings context is
// rendered too, as absent when that context is missing.
func (d *Detector) PrintInfo(settings *SiteSettings) error {
	envName := d.EnvironmentName()
	dbName, dbNameOK := d.MultiSiteDBName(settings)

	data := struct {
		Hosted           bool
		Group            string
		Environment      string
		Class            Class
		Realm            string
		FilesRoot        string
		MultiSiteFactory bool
		DBName           string
		DBNameOK         bool
		NonProduction    string
		ApplicationID    string
		CI               bool
		CIName           string
	}{
		Hosted:           d.IsHosted(),
		Group:            d.Group(),
		Environment:      envName,
		Class:            ClassifyName(envName),
		Realm:            d.Realm(),
		FilesRoot:        d.FilesRootPath(),
		MultiSiteFactory: d.IsMultiSiteFactoryEnv(),
		DBName:           dbName,
		DBNameOK:         dbNameOK,
		NonProduction:    d.NonProductionFlag(),
		ApplicationID:    d.ApplicationID(),
		CI:               d.IsCI(),
		CIName:           d.CIName(),
	}

	tmplParsed := template.Must(template.New("info").Parse(infoTemplate))

	if err := tmplParsed.Execute(d.stdOut, data); err != nil {
		slog.Default().Error("error executing template", "template", tmplParsed.Name(), "err", err)
		return err
	}

	return nil
}

// PrintClassification prints the classification of an arbitrary environment
// name to the standard output (or another defined io.Writer).
func (d *Detector) PrintClassification(name string) error {
	data := struct {
		Name  string
		Class Class
	}{
		Name:  name,
		Class: ClassifyName(name),
	}

	tmplParsed := template.Must(template.New("classify").Parse(classifyTemplate))

	if err := tmplParsed.Execute(d.stdOut, data); err != nil {
		slog.Default().Error("error executing template", "template", tmplParsed.Name(), "err", err)
		return err
	}

	return nil
}
