package upgrade

// Registry maps a SharePoint Framework version to the rules upgrading a
// project to that version. Rules are built fresh on every call.
type Registry map[string]func() []Rule

// DefaultRegistry holds the rules of every supported version but the first.
var DefaultRegistry = Registry{
	"1.0.1": rulesV101,
	"1.0.2": rulesV102,
	"1.1.0": rulesV110,
	"1.1.1": rulesV111,
	"1.1.3": rulesV113,
	"1.2.0": rulesV120,
	"1.3.0": rulesV130,
	"1.3.1": rulesV131,
	"1.3.2": rulesV132,
	"1.3.4": rulesV134,
	"1.4.0": rulesV140,
	"1.4.1": rulesV141,
	"1.5.0": rulesV150,
	"1.5.1": rulesV151,
	"1.6.0": rulesV160,
	"1.7.0": rulesV170,
	"1.7.1": rulesV171,
	"1.8.0": rulesV180,
	"1.8.1": rulesV181,
	"1.8.2": rulesV182,
}

// RulesFor returns the rules of version, nil when the registry has none.
func (r Registry) RulesFor(version string) []Rule {
	build, ok := r[version]
	if !ok {
		return nil
	}
	return build()
}
