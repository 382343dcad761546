package token

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.asm")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLexHelloWorld(t *testing.T) {
	src := ".data\n" +
		"msg: .asciiz \"Hello, world!\\n\"\n" +
		".text\n" +
		".globl main\n" +
		"main:\n" +
		"  li $v0, 4\n" +
		"  la $a0, msg\n" +
		"  syscall\n"
	path := writeTemp(t, src)

	lines, err := Lex(path)
	if err != nil {
		t.Fatalf("Lex: %v", err)
	}

	var nonEmpty []Line
	for _, l := range lines {
		if len(l) > 0 {
			nonEmpty = append(nonEmpty, l)
		}
	}
	if len(nonEmpty) != 8 {
		t.Fatalf("expected 8 non-empty lines, got %d: %v", len(nonEmpty), nonEmpty)
	}

	label := nonEmpty[1][0]
	if label.Kind != KindLabel || label.Name != "msg" || !label.Decl {
		t.Errorf("unexpected label token: %+v", label)
	}

	directive := nonEmpty[1][1]
	if directive.Kind != KindDirective || directive.Directive != Asciiz {
		t.Errorf("unexpected directive token: %+v", directive)
	}

	str := nonEmpty[1][2]
	if str.Kind != KindText || str.Text != "Hello, world!\n" {
		t.Errorf("unexpected text token: %+v", str)
	}

	op := nonEmpty[5][0]
	if op.Kind != KindOperator || op.Name != "li" {
		t.Errorf("unexpected operator token: %+v", op)
	}
}

func TestLexHexAndDecimal(t *testing.T) {
	path := writeTemp(t, "li $t0, 0x12345678\nli $t1, -42\n")
	lines, err := Lex(path)
	if err != nil {
		t.Fatalf("Lex: %v", err)
	}
	hex := lines[0][2]
	if hex.Kind != KindNumber || hex.Number != 0x12345678 {
		t.Errorf("expected hex 0x12345678, got %+v", hex)
	}
	dec := lines[1][2]
	if dec.Kind != KindNumber || dec.Number != -42 {
		t.Errorf("expected decimal -42, got %+v", dec)
	}
}

// TestLexHexOverflowFallsThroughToLabel matches
// original_source/src/sim/tokenizer.rs's i32::from_str_radix boundary:
// a hex body whose magnitude exceeds 0x7FFFFFFF fails the Number parse and
// falls through to the next classification case instead of wrapping into a
// negative Number.
func TestLexHexOverflowFallsThroughToLabel(t *testing.T) {
	path := writeTemp(t, "li $t0, 0x80000000\n")
	lines, err := Lex(path)
	if err != nil {
		t.Fatalf("Lex: %v", err)
	}
	tok := lines[0][2]
	if tok.Kind != KindLabel || tok.Name != "0x80000000" || tok.Decl {
		t.Errorf("expected label reference 0x80000000, got %+v", tok)
	}
}

func TestLexHexAtBoundaryIsNumber(t *testing.T) {
	path := writeTemp(t, "li $t0, 0x7FFFFFFF\n")
	lines, err := Lex(path)
	if err != nil {
		t.Fatalf("Lex: %v", err)
	}
	tok := lines[0][2]
	if tok.Kind != KindNumber || tok.Number != 0x7FFFFFFF {
		t.Errorf("expected Number 0x7FFFFFFF, got %+v", tok)
	}
}

func TestLexCommentHandling(t *testing.T) {
	path := writeTemp(t, "# full comment line\nli $t0, 1 # trailing comment\n")
	lines, err := Lex(path)
	if err != nil {
		t.Fatalf("Lex: %v", err)
	}
	if len(lines[0]) != 0 {
		t.Errorf("expected comment line to be empty, got %v", lines[0])
	}
	if len(lines[1]) != 3 {
		t.Errorf("expected 3 tokens after stripping trailing comment, got %v", lines[1])
	}
}

// The comma inside the quotes stays part of the string; the '#' after the
// closing quote starts a comment (a '#' truncates the line wherever it is).
func TestLexQuotedStringWithCommaAndHash(t *testing.T) {
	path := writeTemp(t, `s: .asciiz "a, b" # a comment`+"\n")
	lines, err := Lex(path)
	if err != nil {
		t.Fatalf("Lex: %v", err)
	}
	str := lines[0][2]
	if str.Kind != KindText || str.Text != "a, b" {
		t.Errorf("unexpected text token: %+v", str)
	}
}

func TestLexUnknownDirective(t *testing.T) {
	path := writeTemp(t, ".bogus\n")
	if _, err := Lex(path); err == nil {
		t.Fatal("expected error for unknown directive")
	} else if lexErr, ok := err.(*LexError); !ok || lexErr.Kind != ErrUnknownDirective {
		t.Errorf("expected UnknownDirective error, got %v", err)
	}
}

func TestLexOpenFileError(t *testing.T) {
	_, err := Lex(filepath.Join(t.TempDir(), "missing.asm"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if lexErr, ok := err.(*LexError); !ok || lexErr.Kind != ErrOpenFile {
		t.Errorf("expected OpenFileError, got %v", err)
	}
}

func TestLexByteDirectiveLabelVsOperator(t *testing.T) {
	path := writeTemp(t, ".byte 65, 66, 67, 0\n")
	lines, err := Lex(path)
	if err != nil {
		t.Fatalf("Lex: %v", err)
	}
	if lines[0][0].Kind != KindDirective || lines[0][0].Directive != Byte {
		t.Fatalf("unexpected first token: %+v", lines[0][0])
	}
	for _, tok := range lines[0][1:] {
		if tok.Kind != KindNumber {
			t.Errorf("expected number token, got %+v", tok)
		}
	}
}

func TestLexNonFirstBareWordIsLabelReference(t *testing.T) {
	path := writeTemp(t, "b target\n")
	lines, err := Lex(path)
	if err != nil {
		t.Fatalf("Lex: %v", err)
	}
	op := lines[0][0]
	if op.Kind != KindOperator || op.Name != "b" {
		t.Fatalf("unexpected operator: %+v", op)
	}
	ref := lines[0][1]
	if ref.Kind != KindLabel || ref.Decl || ref.Name != "target" {
		t.Errorf("expected label reference, got %+v", ref)
	}
}
