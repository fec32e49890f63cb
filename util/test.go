package util

import (
	"fmt"
	"github.com/hauke96/sigolo/v2"
	"github.com/pkg/errors"
	"reflect"
	"regexp"
	"strings"
	"testing"
)

func AssertEqual(t *testing.T, expected any, actual any) {
	t.Helper()

	expectedString, expectedIsString := expected.(string)
	actualString, actualIsString := actual.(string)

	if reflect.DeepEqual(expected, actual) {
		return
	}

	if expectedIsString && actualIsString {
		assertEqualStrings(t, expectedString, actualString)
		return
	}

	sigolo.Errorb(1, "Expect to be equal.\nExpected: %+v\n----------\nActual  : %+v\n", expected, actual)
	t.Fail()
}

// assertEqualStrings prints both strings line by line next to each other and marks the differing lines.
func assertEqualStrings(t *testing.T, expected string, actual string) {
	expectedLines := strings.Split(strings.ReplaceAll(expected, "\n", "\\n\n"), "\n")
	actualLines := strings.Split(strings.ReplaceAll(actual, "\n", "\\n\n"), "\n")

	sigolo.Errorb(2, "Expect to be equal.\n|   | %-50s | %-50s |", "Expected", "Actual")
	fmt.Printf("|%s|\n", strings.Repeat("-", 109))

	lineCount := max(len(expectedLines), len(actualLines))
	for i := 0; i < lineCount; i++ {
		expectedLine := ""
		if i < len(expectedLines) {
			expectedLine = "\"" + expectedLines[i] + "\""
		}
		actualLine := ""
		if i < len(actualLines) {
			actualLine = "\"" + actualLines[i] + "\""
		}

		changeMark := " "
		if actualLine != expectedLine {
			changeMark = "*"
		}

		fmt.Printf("| %s | %-50s | %-50s |\n", changeMark, expectedLine, actualLine)
	}

	t.Fail()
}

func AssertNil(t *testing.T, value any) {
	t.Helper()
	if value != nil && !reflect.ValueOf(value).IsNil() {
		sigolo.Errorb(1, "Expect to be 'nil' but was: %#v", value)
		t.Fail()
	}
}

func AssertNotNil(t *testing.T, value any) {
	t.Helper()
	if value == nil || reflect.ValueOf(value).IsNil() {
		sigolo.Errorb(1, "Expect NOT to be 'nil' but was: %#v", value)
		t.Fail()
	}
}

func AssertError(t *testing.T, expectedMessage string, err error) {
	t.Helper()
	if err == nil {
		sigolo.Errorb(1, "Expected error with message: %s\nActual: no error", expectedMessage)
		t.FailNow()
	}
	if expectedMessage != err.Error() {
		sigolo.Errorb(1, "Expected message: %s\nActual error message: %s", expectedMessage, err.Error())
		t.Fail()
	}
}

func AssertErrorContains(t *testing.T, expectedPart string, err error) {
	t.Helper()
	if err == nil {
		sigolo.Errorb(1, "Expected error containing: %s\nActual: no error", expectedPart)
		t.FailNow()
	}
	if !strings.Contains(err.Error(), expectedPart) {
		sigolo.Errorb(1, "Expected message to contain: %s\nActual error message: %s", expectedPart, err.Error())
		t.Fail()
	}
}

// AssertErrorAs fails the test immediately when err does not wrap an error of type T.
func AssertErrorAs[T error](t *testing.T, err error) T {
	t.Helper()
	var target T
	if !errors.As(err, &target) {
		sigolo.Errorb(1, "Expected error of type %T but got: %#v", target, err)
		t.FailNow()
	}
	return target
}

func AssertTrue(t *testing.T, b bool) {
	t.Helper()
	if !b {
		sigolo.Errorb(1, "Expected true but got false")
		t.Fail()
	}
}

func AssertFalse(t *testing.T, b bool) {
	t.Helper()
	if b {
		sigolo.Errorb(1, "Expected false but got true")
		t.Fail()
	}
}

func AssertMatch(t *testing.T, regexString string, content string) {
	t.Helper()
	regex := regexp.MustCompile(regexString)
	if !regex.MatchString(content) {
		sigolo.Errorb(1, "Expected to match\nRegex: %s\nContent: %s", regexString, content)
		t.Fail()
	}
}
