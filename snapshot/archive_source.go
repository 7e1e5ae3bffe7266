package snapshot

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"code.cloudfoundry.org/archiver/extractor"
	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager"
	"github.com/joho/godotenv"

	"github.com/pivotal-cf/cred-audit/mimetype"
)

// ArchiveSource reads a project backup: a directory, or a tar/tgz/zip of
// one, holding either one directory per environment with dotenv files
// inside or one `<environment>.env` file per environment.
type ArchiveSource struct {
	path      string
	clock     clock.Clock
	extractor extractor.Extractor
}

func NewArchiveSource(path string, clock clock.Clock) *ArchiveSource {
	return &ArchiveSource{
		path:      path,
		clock:     clock,
		extractor: extractor.NewDetectable(),
	}
}

func (s *ArchiveSource) Snapshot(logger lager.Logger, projectID string) (Snapshot, error) {
	logger = logger.Session("archive-snapshot", lager.Data{
		"path":    s.path,
		"project": projectID,
	})
	logger.Debug("starting")
	defer logger.Debug("done")

	root, cleanup, err := s.open(logger)
	if err != nil {
		return Snapshot{}, err
	}
	defer cleanup()

	envs, err := readEnvironments(logger, root)
	if err != nil {
		logger.Error("failed-to-read-environments", err)
		return Snapshot{}, err
	}

	logger.Info("read-environments", lager.Data{"count": len(envs)})

	return Snapshot{
		ProjectID:    projectID,
		TakenAt:      s.clock.Now().UTC(),
		Environments: envs,
	}, nil
}

func (s *ArchiveSource) open(logger lager.Logger) (string, func(), error) {
	fi, err := os.Stat(s.path)
	if err != nil {
		logger.Error("failed-to-stat", err)
		return "", nil, err
	}

	if fi.IsDir() {
		return s.path, func() {}, nil
	}

	if _, ok := mimetype.IsArchive(s.path); !ok {
		err := fmt.Errorf("%s is not a tar, tgz or zip archive", filepath.Base(s.path))
		logger.Error("unsupported-archive", err)
		return "", nil, err
	}

	dest, err := ioutil.TempDir("", "cred-audit-archive")
	if err != nil {
		logger.Error("failed-to-create-temp-dir", err)
		return "", nil, err
	}

	cleanup := func() {
		os.RemoveAll(dest)
	}

	if err := s.extractor.Extract(s.path, dest); err != nil {
		logger.Error("failed-to-extract", err)
		cleanup()
		return "", nil, err
	}

	return dest, cleanup, nil
}

func readEnvironments(logger lager.Logger, root string) ([]Environment, error) {
	children, err := ioutil.ReadDir(root)
	if err != nil {
		return nil, err
	}

	// archives made from a single top-level directory
	if len(children) == 1 && children[0].IsDir() {
		nested := filepath.Join(root, children[0].Name())
		grandchildren, err := ioutil.ReadDir(nested)
		if err == nil && containsEnvironments(grandchildren) {
			root = nested
			children = grandchildren
		}
	}

	var envs []Environment
	for _, child := range children {
		path := filepath.Join(root, child.Name())

		switch {
		case child.IsDir():
			files, err := envFilesIn(path)
			if err != nil {
				return nil, err
			}
			if len(files) == 0 {
				continue
			}

			vars, err := godotenv.Read(files...)
			if err != nil {
				logger.Error("failed-to-parse-env-files", err, lager.Data{"environment": child.Name()})
				return nil, err
			}

			envs = append(envs, newEnvironment(child.Name(), vars))
		case isEnvFile(child.Name()):
			vars, err := godotenv.Read(path)
			if err != nil {
				logger.Error("failed-to-parse-env-file", err, lager.Data{"file": child.Name()})
				return nil, err
			}

			name := strings.TrimSuffix(child.Name(), ".env")
			if name == "" {
				name = "default"
			}

			envs = append(envs, newEnvironment(name, vars))
		}
	}

	sort.Slice(envs, func(i, j int) bool {
		return envs[i].Name < envs[j].Name
	})

	return envs, nil
}

func newEnvironment(name string, vars map[string]string) Environment {
	env := Environment{
		ID:   "archive:" + name,
		Name: name,
	}

	for k, v := range vars {
		env.Variables = append(env.Variables, Variable{Key: k, Value: v})
	}

	sort.Slice(env.Variables, func(i, j int) bool {
		return env.Variables[i].Key < env.Variables[j].Key
	})

	return env
}

func envFilesIn(dir string) ([]string, error) {
	children, err := ioutil.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, child := range children {
		if !child.IsDir() && isEnvFile(child.Name()) {
			files = append(files, filepath.Join(dir, child.Name()))
		}
	}

	sort.Strings(files)

	return files, nil
}

func containsEnvironments(children []os.FileInfo) bool {
	for _, child := range children {
		if child.IsDir() {
			return true
		}
		if name := child.Name(); name != ".env" && strings.HasSuffix(name, ".env") {
			return true
		}
	}
	return false
}

func isEnvFile(name string) bool {
	return name == ".env" || strings.HasSuffix(name, ".env") || strings.HasPrefix(name, ".env.")
}
