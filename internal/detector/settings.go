package detector

// MultisiteDBNameKey is the site-settings key carrying the per-site database
// name on multi-site factory environments.
const MultisiteDBNameKey = "multisite_db_name"

// SiteSettings is the site-settings context injected by the surrounding
// hosting framework. The detector only reads from it and never constructs or
// validates it. A nil SiteSettings means no context was provided.
type SiteSettings struct {
	Conf map[string]string
}

// MultisiteDBName returns the configured per-site database name and whether
// it is present. A nil receiver or a missing key reports false.
func (s *SiteSettings) MultisiteDBName() (string, bool) {
	if s == nil {
		return "", false
	}

	name, ok := s.Conf[MultisiteDBNameKey]

	return name, ok
}
