// Package glw provides transform math, a minimal scene graph, and a
// gl quad renderer for drawing it.
package glw

import (
	"fmt"
	"log"
	"math"
	"os"
	"runtime"
	"strings"

	"golang.org/x/mobile/gl"
)

var (
	ctx    gl.Context
	logger = log.New(os.Stderr, "glw: ", 0)
)

// TODO allow package to be used by multiple contexts in parallel.
func With(glctx gl.Context) gl.Context { ctx = glctx; return glctx }

func must(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}

// caller returns first file and line number outside of this package for calling
// goroutine's stack, prefixed with defaultName which may be overridden based on
// stack frames.
func caller(defaultName string) string {
	pc := make([]uintptr, 10)
	n := runtime.Callers(3, pc)
	frames := runtime.CallersFrames(pc[:n])

	var (
		frame runtime.Frame
		more  bool
		name  = defaultName
		inpkg = func(s string) bool { return strings.HasPrefix(s, "dasa.cc/ar/glw") }
	)

	for frame, more = frames.Next(); more && inpkg(frame.Function); frame, more = frames.Next() {
		switch frame.Function {
		case "dasa.cc/ar/glw.VertSrc.Compile":
			name = "VertexShader"
		case "dasa.cc/ar/glw.FragSrc.Compile":
			name = "FragmentShader"
		}
	}

	return fmt.Sprintf("%s %s:%v", name, frame.File, frame.Line)
}

func compile(typ gl.Enum, src string) (gl.Shader, error) {
	shd := ctx.CreateShader(typ)
	ctx.ShaderSource(shd, src)
	ctx.CompileShader(shd)
	if ctx.GetShaderi(shd, gl.COMPILE_STATUS) == 0 {
		return shd, fmt.Errorf("%s\n%s", caller("CompileShader"), ctx.GetShaderInfoLog(shd))
	}
	return shd, nil
}

type VertSrc string

func (src VertSrc) Compile() (gl.Shader, error) { return compile(gl.VERTEX_SHADER, string(src)) }

type FragSrc string

func (src FragSrc) Compile() (gl.Shader, error) { return compile(gl.FRAGMENT_SHADER, string(src)) }

type Program struct{ gl.Program }

func (prg Program) Use()                           { ctx.UseProgram(prg.Program) }
func (prg Program) Uniform(name string) gl.Uniform { return ctx.GetUniformLocation(prg.Program, name) }
func (prg Program) Attrib(name string) gl.Attrib   { return ctx.GetAttribLocation(prg.Program, name) }
func (prg Program) Delete()                        { ctx.DeleteProgram(prg.Program) }

func (prg *Program) MustBuild(vsrc VertSrc, fsrc FragSrc) { must(prg.Build(vsrc, fsrc)) }

func (prg *Program) Build(vsrc VertSrc, fsrc FragSrc) error {
	prg.Program = ctx.CreateProgram()

	vshd, err := vsrc.Compile()
	if err != nil {
		return err
	}
	ctx.AttachShader(prg.Program, vshd)
	defer ctx.DeleteShader(vshd)

	fshd, err := fsrc.Compile()
	if err != nil {
		return err
	}
	ctx.AttachShader(prg.Program, fshd)
	defer ctx.DeleteShader(fshd)

	ctx.LinkProgram(prg.Program)
	if ctx.GetProgrami(prg.Program, gl.LINK_STATUS) == 0 {
		return fmt.Errorf("%s\n%s", caller("LinkProgram"), ctx.GetProgramInfoLog(prg.Program))
	}

	return nil
}

type FloatBuffer struct {
	gl.Buffer
	bin   []byte
	size  int
	count int
	usage gl.Enum
}

// Create allocates buffer for vertices of size components each.
func (buf *FloatBuffer) Create(usage gl.Enum, size int, data []float32) {
	buf.usage = usage
	buf.size = size
	buf.Buffer = ctx.CreateBuffer()
	buf.Bind()
	buf.Update(data)
}

func (buf FloatBuffer) Delete()           { ctx.DeleteBuffer(buf.Buffer) }
func (buf *FloatBuffer) Bind()            { ctx.BindBuffer(gl.ARRAY_BUFFER, buf.Buffer) }
func (buf FloatBuffer) Unbind()           { ctx.BindBuffer(gl.ARRAY_BUFFER, gl.Buffer{Value: 0}) }
func (buf FloatBuffer) Draw(mode gl.Enum) { ctx.DrawArrays(mode, 0, buf.count) }

// Update uploads data, reusing the existing store when it fits.
func (buf *FloatBuffer) Update(data []float32) {
	buf.count = len(data) / buf.size
	subok := len(buf.bin) > 0 && len(data)*4 <= len(buf.bin)
	if !subok {
		buf.bin = make([]byte, len(data)*4)
	}
	for i, x := range data {
		u := math.Float32bits(x)
		buf.bin[4*i+0] = byte(u >> 0)
		buf.bin[4*i+1] = byte(u >> 8)
		buf.bin[4*i+2] = byte(u >> 16)
		buf.bin[4*i+3] = byte(u >> 24)
	}
	if subok {
		ctx.BufferSubData(gl.ARRAY_BUFFER, 0, buf.bin)
	} else {
		ctx.BufferData(gl.ARRAY_BUFFER, buf.bin, buf.usage)
	}
}
