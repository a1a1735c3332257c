package gitcheck

import "errors"

type mockGitRunner struct {
	VersionFunc      func() (string, error)
	GlobalConfigFunc func(key string) (string, error)
}

func (m *mockGitRunner) Version() (string, error) {
	return m.VersionFunc()
}

func (m *mockGitRunner) GlobalConfig(key string) (string, error) {
	return m.GlobalConfigFunc(key)
}

func configValues(values map[string]string) func(string) (string, error) {
	return func(key string) (string, error) {
		v, ok := values[key]
		if !ok {
			return "", errors.New("exit status 1")
		}
		return v, nil
	}
}

type mockAsker struct {
	Answer   string
	Err      error
	Asked    []string
	CloseCnt int
}

func (m *mockAsker) Ask(question string) (string, error) {
	m.Asked = append(m.Asked, question)
	return m.Answer, m.Err
}

func (m *mockAsker) Close() error {
	m.CloseCnt++
	return nil
}
