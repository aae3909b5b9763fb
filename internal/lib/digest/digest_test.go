package digest

import "testing"

func TestHashKnownVector(t *testing.T) {
	got := Hash("secret")
	want := "2bb80d537b1da3e38bd30361aa855686bde0eacd7162fef6a25fe97bf527a25b"
	if got != want {
		t.Fatalf("Hash(\"secret\") = %s, want %s", got, want)
	}
}

func TestVerify(t *testing.T) {
	stored := Hash("secret")

	if !Verify("secret", stored) {
		t.Fatal("expected matching password to verify")
	}

	if Verify("wrong", stored) {
		t.Fatal("expected mismatched password to fail")
	}

	if Verify("secret", "") {
		t.Fatal("expected empty stored digest to fail")
	}
}

func TestHashIsDeterministic(t *testing.T) {
	if Hash("hunter2") != Hash("hunter2") {
		t.Fatal("same input must produce the same digest")
	}
}
