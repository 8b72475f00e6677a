package cliconfig

import (
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

type GlobMatcher struct {
	globPattern                        glob.Glob
	inputString                        string
	shouldMatchAnyFileOrDirWithPattern bool
	patternRoot                        string
	isAdditional                       bool
}

func CreateGlobMatchers(patterns []string, patternsRoot string) []GlobMatcher {
	globMatchers := []GlobMatcher{}
	patternRootNorm := normalizePath(patternsRoot)
	if patternRootNorm != "" && !strings.HasSuffix(patternRootNorm, "/") {
		patternRootNorm = patternRootNorm + "/"
	}

	for _, pattern := range patterns {
		// plain names without `/` or `*` match any file or directory with
		// that exact name, aligning with .gitignore behavior
		shouldMatchAnyFileOrDirWithPattern := !strings.Contains(pattern, "/") && !strings.Contains(pattern, "*")

		if strings.HasSuffix(pattern, "/") && !strings.Contains(pattern, "*") {
			// a `/`-suffixed entry matches the whole directory recursively
			pattern = "**" + pattern + "**"
		}

		patternNorm := strings.ReplaceAll(pattern, "\\", "/")

		item := GlobMatcher{
			globPattern:                        glob.MustCompile(patternNorm),
			inputString:                        patternNorm,
			patternRoot:                        patternRootNorm,
			shouldMatchAnyFileOrDirWithPattern: shouldMatchAnyFileOrDirWithPattern,
			isAdditional:                       false,
		}
		globMatchers = append(globMatchers, item)
		// The glob library does not match root-level files against a `**/`
		// prefix (e.g. `**/*.js` misses `file.js`), so an additional
		// pattern without the prefix patches the discrepancy.
		if strings.HasPrefix(patternNorm, "**/") {
			additionalPattern := strings.Replace(patternNorm, "**/", "", 1)
			additionalItem := GlobMatcher{
				globPattern:                        glob.MustCompile(additionalPattern),
				inputString:                        additionalPattern,
				patternRoot:                        patternRootNorm,
				shouldMatchAnyFileOrDirWithPattern: false,
				isAdditional:                       true,
			}
			globMatchers = append(globMatchers, additionalItem)
		}
	}
	return globMatchers
}

func MatchesAnyGlobMatcher(filePath string, matchers []GlobMatcher) bool {
	for _, matcher := range matchers {
		fileInternal := normalizePath(filePath)
		fileWithoutPrefix := strings.TrimPrefix(fileInternal, matcher.patternRoot)
		if matcher.globPattern.Match(fileWithoutPrefix) {
			return true
		}
		if matcher.shouldMatchAnyFileOrDirWithPattern && strings.HasSuffix(fileWithoutPrefix, "/"+matcher.inputString) {
			// matches a file with exactly the pattern as its name
			return true
		}
		if matcher.shouldMatchAnyFileOrDirWithPattern && (strings.Contains(fileWithoutPrefix, "/"+matcher.inputString+"/") || strings.HasPrefix(fileWithoutPrefix, matcher.inputString+"/")) {
			// matches a directory with exactly the pattern as its name
			return true
		}
	}
	return false
}

func normalizePath(p string) string {
	return strings.ReplaceAll(filepath.ToSlash(p), "\\", "/")
}
