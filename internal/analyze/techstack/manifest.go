package techstack

import (
	"encoding/json"
	"regexp"
	"strings"
)

// manifests holds the dependency names harvested from each ecosystem's
// manifest files, plus the variable names seen in .env files.
type manifests struct {
	deps map[Ecosystem]map[string]struct{}
	env  []string
}

func (m *manifests) add(eco Ecosystem, name string) {
	if name == "" {
		return
	}
	set, ok := m.deps[eco]
	if !ok {
		set = make(map[string]struct{})
		m.deps[eco] = set
	}
	set[name] = struct{}{}
}

func (m *manifests) has(d Dependency) bool {
	_, ok := m.deps[d.Ecosystem][d.Name]
	return ok
}

var (
	requirementRe = regexp.MustCompile(`^([A-Za-z0-9._-]+)`)
	gemRe         = regexp.MustCompile(`(?m)^\s*gem\s+['"]([^'"]+)['"]`)
	gomodRe       = regexp.MustCompile(`(?m)^\s+([\w./-]+)\s+v`)
	imageRe       = regexp.MustCompile(`(?m)^\s*image:\s*['"]?([^\s'"#]+)`)
	fromRe        = regexp.MustCompile(`(?mi)^FROM\s+([^\s]+)`)
	envNameRe     = regexp.MustCompile(`(?m)^\s*(?:export\s+)?([A-Za-z_][A-Za-z0-9_]*)\s*=`)
	tomlDepRe     = regexp.MustCompile(`(?m)^([A-Za-z0-9._-]+)\s*=`)
)

func extractManifests(ix *index) *manifests {
	m := &manifests{deps: make(map[Ecosystem]map[string]struct{})}
	extractNPM(ix, m)
	extractPython(ix, m)
	extractRuby(ix, m)
	extractGo(ix, m)
	extractRust(ix, m)
	extractComposer(ix, m)
	extractDocker(ix, m)
	extractEnv(ix, m)
	return m
}

func extractNPM(ix *index, m *manifests) {
	content, ok := ix.read("package.json")
	if !ok {
		return
	}
	var pkg struct {
		Dependencies         map[string]string `json:"dependencies"`
		DevDependencies      map[string]string `json:"devDependencies"`
		PeerDependencies     map[string]string `json:"peerDependencies"`
		OptionalDependencies map[string]string `json:"optionalDependencies"`
	}
	if err := json.Unmarshal([]byte(content), &pkg); err != nil {
		return
	}
	for _, set := range []map[string]string{pkg.Dependencies, pkg.DevDependencies, pkg.PeerDependencies, pkg.OptionalDependencies} {
		for name := range set {
			m.add(EcoNPM, name)
		}
	}
}

func extractPython(ix *index, m *manifests) {
	for _, file := range []string{"requirements.txt", "requirements-dev.txt", "requirements/base.txt", "requirements/dev.txt"} {
		content, ok := ix.read(file)
		if !ok {
			continue
		}
		for _, line := range strings.Split(content, "\n") {
			line = strings.TrimSpace(line)
			if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "-") {
				continue
			}
			if match := requirementRe.FindStringSubmatch(line); match != nil {
				m.add(EcoPython, match[1])
			}
		}
	}
	if content, ok := ix.read("pyproject.toml"); ok {
		for _, line := range strings.Split(content, "\n") {
			line = strings.TrimSpace(line)
			if !strings.HasPrefix(line, `"`) && !strings.HasPrefix(line, `'`) {
				continue
			}
			line = strings.Trim(line, `"',`)
			if match := requirementRe.FindStringSubmatch(line); match != nil {
				m.add(EcoPython, match[1])
			}
		}
	}
}

func extractRuby(ix *index, m *manifests) {
	content, ok := ix.read("Gemfile")
	if !ok {
		return
	}
	for _, match := range gemRe.FindAllStringSubmatch(content, -1) {
		m.add(EcoRuby, match[1])
	}
}

func extractGo(ix *index, m *manifests) {
	content, ok := ix.read("go.mod")
	if !ok {
		return
	}
	for _, match := range gomodRe.FindAllStringSubmatch(content, -1) {
		m.add(EcoGo, match[1])
	}
}

func extractRust(ix *index, m *manifests) {
	content, ok := ix.read("Cargo.toml")
	if !ok {
		return
	}
	for _, section := range []string{"[dependencies]", "[dev-dependencies]", "[build-dependencies]"} {
		body := tomlSection(content, section)
		for _, match := range tomlDepRe.FindAllStringSubmatch(body, -1) {
			m.add(EcoRust, match[1])
		}
	}
}

func extractComposer(ix *index, m *manifests) {
	content, ok := ix.read("composer.json")
	if !ok {
		return
	}
	var pkg struct {
		Require    map[string]string `json:"require"`
		RequireDev map[string]string `json:"require-dev"`
	}
	if err := json.Unmarshal([]byte(content), &pkg); err != nil {
		return
	}
	for _, set := range []map[string]string{pkg.Require, pkg.RequireDev} {
		for name := range set {
			m.add(EcoComposer, name)
		}
	}
}

func extractDocker(ix *index, m *manifests) {
	for _, file := range []string{"docker-compose.yml", "docker-compose.yaml", "compose.yaml", "compose.yml"} {
		content, ok := ix.read(file)
		if !ok {
			continue
		}
		for _, match := range imageRe.FindAllStringSubmatch(content, -1) {
			m.add(EcoDocker, stripImageTag(match[1]))
		}
	}
	if content, ok := ix.read("Dockerfile"); ok {
		for _, match := range fromRe.FindAllStringSubmatch(content, -1) {
			image := match[1]
			if strings.EqualFold(image, "scratch") {
				continue
			}
			m.add(EcoDocker, stripImageTag(image))
		}
	}
}

func extractEnv(ix *index, m *manifests) {
	seen := make(map[string]struct{})
	for _, file := range []string{".env", ".env.example", ".env.sample", ".env.local", ".env.template"} {
		content, ok := ix.read(file)
		if !ok {
			continue
		}
		for _, match := range envNameRe.FindAllStringSubmatch(content, -1) {
			if _, dup := seen[match[1]]; dup {
				continue
			}
			seen[match[1]] = struct{}{}
			m.env = append(m.env, match[1])
		}
	}
}

// tomlSection returns the lines between the named section header and the
// next header, or "" when the section is absent.
func tomlSection(content, header string) string {
	idx := strings.Index(content, header)
	if idx < 0 {
		return ""
	}
	body := content[idx+len(header):]
	if next := strings.Index(body, "\n["); next >= 0 {
		body = body[:next]
	}
	return body
}

func stripImageTag(image string) string {
	if idx := strings.LastIndex(image, ":"); idx > 0 && !strings.Contains(image[idx:], "/") {
		image = image[:idx]
	}
	return image
}
