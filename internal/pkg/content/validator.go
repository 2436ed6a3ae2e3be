// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package content

import (
	"errors"
	"fmt"
	"html"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
)

const DefaultMaxLength = 2000

var (
	ErrEmpty       = errors.New("评论内容不能为空")
	ErrContainsURL = errors.New("评论内容不能包含链接")
	ErrBannedWord  = errors.New("评论内容包含不当用语")
	ErrTooLong     = errors.New("评论内容过长")
)

var urlPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)https?://\S+`),
	regexp.MustCompile(`(?i)www\.\S+`),
	regexp.MustCompile(`(?i)\b[a-z0-9-]+\.(com|net|org|io|co\.uk|edu|gov)\b\S*`),
}

var whitespace = regexp.MustCompile(`\s+`)

// ValidationError 校验失败的具体原因，Found 是命中的链接或者违禁词，最多三个
type ValidationError struct {
	Kind  error
	Found []string
}

func (e *ValidationError) Error() string {
	if len(e.Found) == 0 {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.Kind.Error(), strings.Join(e.Found, ", "))
}

func (e *ValidationError) Is(target error) bool {
	return e.Kind == target
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}

type Config struct {
	MaxLength   int      `yaml:"maxLength"`
	BannedWords []string `yaml:"bannedWords"`
}

// Validator 评论内容校验。创建和编辑之前都要走一遍
type Validator struct {
	maxLength int
	banned    map[string]struct{}
	strict    *bluemonday.Policy
}

func NewValidator(cfg Config) *Validator {
	words := cfg.BannedWords
	if len(words) == 0 {
		words = defaultBannedWords
	}
	banned := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		banned[w] = struct{}{}
	}
	maxLength := cfg.MaxLength
	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}
	return &Validator{
		maxLength: maxLength,
		banned:    banned,
		strict:    bluemonday.StrictPolicy(),
	}
}

// Validate 返回清洗后的内容
func (v *Validator) Validate(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", &ValidationError{Kind: ErrEmpty}
	}
	// 原始输入远超上限的，没必要再跑正则
	if utf8.RuneCountInString(text) > v.maxLength*4 {
		return "", &ValidationError{Kind: ErrTooLong}
	}
	cleaned := v.sanitize(text)
	if cleaned == "" {
		return "", &ValidationError{Kind: ErrEmpty}
	}
	// 原文里的链接可能藏在标签属性里，解码后的内容里可能藏着编码过的链接和违禁词，两份都要查
	for _, s := range []string{cleaned, text} {
		if urls := v.findURLs(s); len(urls) > 0 {
			return "", &ValidationError{Kind: ErrContainsURL, Found: urls}
		}
		if words := v.findBannedWords(s); len(words) > 0 {
			return "", &ValidationError{Kind: ErrBannedWord, Found: words}
		}
	}
	if utf8.RuneCountInString(cleaned) > v.maxLength {
		return "", &ValidationError{Kind: ErrTooLong}
	}
	return cleaned, nil
}

// maxSanitizeRounds 每一轮会解开一层实体编码，正常内容一两轮就稳定了
const maxSanitizeRounds = 32

// sanitize 去掉所有标签。实体反转义之后可能又拼出标签，所以重复到结果稳定为止。
// 超过轮数还不稳定的，把尖括号全部去掉，保证返回值里不会有标签
func (v *Validator) sanitize(text string) string {
	stable := false
	for i := 0; i < maxSanitizeRounds; i++ {
		next := html.UnescapeString(v.strict.Sanitize(text))
		if next == text {
			stable = true
			break
		}
		text = next
	}
	if !stable {
		text = angleBrackets.Replace(text)
	}
	return strings.TrimSpace(whitespace.ReplaceAllString(text, " "))
}

var angleBrackets = strings.NewReplacer("<", "", ">", "")

func (v *Validator) findURLs(text string) []string {
	var found []string
	for _, p := range urlPatterns {
		for _, m := range p.FindAllString(text, 3) {
			found = append(found, m)
			if len(found) == 3 {
				return found
			}
		}
	}
	return found
}

func (v *Validator) findBannedWords(text string) []string {
	tokens := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
	})
	var found []string
	for _, tok := range tokens {
		if _, ok := v.banned[tok]; ok {
			found = append(found, tok)
			if len(found) == 3 {
				break
			}
		}
	}
	return found
}

var defaultBannedWords = []string{
	"fuck", "fucking", "shit", "bitch", "bastard", "asshole",
	"dick", "cunt", "motherfucker", "slut", "whore", "retard",
}
