package framework

import (
	"regexp"
	"sync"
)

// compiledRegexes memoizes regexp.Compile per pattern string so frameworks
// that use model.PatternRegex compile each pattern exactly once for the
// lifetime of the process, per spec.md §9's "compile regexes once" note,
// even though the data model expresses patterns as plain strings.
var compiledRegexes sync.Map // map[string]*regexp.Regexp

func regexMatch(pattern, s string) bool {
	v, ok := compiledRegexes.Load(pattern)
	var re *regexp.Regexp
	if ok {
		re = v.(*regexp.Regexp)
	} else {
		compiled, err := regexp.Compile(pattern)
		if err != nil {
			return false
		}
		re = compiled
		compiledRegexes.Store(pattern, re)
	}
	return re.MatchString(s)
}
