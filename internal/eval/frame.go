package eval

import "github.com/iamlisp/go-iamlisp/internal/ast"

// frame is one pending list evaluation: the remaining sub-expressions, the
// already-evaluated prefix, and the environment in effect. By convention the
// first element of output, once present, is the callable; subsequent
// elements are argument values.
type frame struct {
	input  *ast.List
	output *ast.List
	env    *Environment
}

func newFrame(input *ast.List, env *Environment) *frame {
	return &frame{input: input, output: ast.NewList(), env: env}
}

// callStack is the explicit stack of frames the driver works on. The top of
// the stack is the current frame; new sub-evaluations push on top, and a
// completed frame deposits its result into the frame below.
type callStack struct {
	frames []*frame
}

func (s *callStack) push(f *frame) {
	s.frames = append(s.frames, f)
}

func (s *callStack) pop() (*frame, bool) {
	if len(s.frames) == 0 {
		return nil, false
	}
	f := s.frames[len(s.frames)-1]
	s.frames = s.frames[:len(s.frames)-1]
	return f, true
}

func (s *callStack) top() (*frame, bool) {
	if len(s.frames) == 0 {
		return nil, false
	}
	return s.frames[len(s.frames)-1], true
}

func (s *callStack) len() int {
	return len(s.frames)
}

// truncate discards frames from the top until exactly depth frames remain.
func (s *callStack) truncate(depth int) {
	for i := depth; i < len(s.frames); i++ {
		s.frames[i] = nil
	}
	s.frames = s.frames[:depth]
}
