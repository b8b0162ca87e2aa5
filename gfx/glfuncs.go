// SPDX-License-Identifier: Unlicense OR MIT

package gfx

import (
	"strings"
	"unsafe"

	giogl "gioui.org/gpu/gl"
	"github.com/go-gl/gl/v3.3-core/gl"
)

// glFuncs exposes the go-gl bindings through the function interface
// Gio's OpenGL backend is written against.
type glFuncs struct{}

func (f *glFuncs) ActiveTexture(texture giogl.Enum) {
	gl.ActiveTexture(uint32(texture))
}

func (f *glFuncs) AttachShader(p giogl.Program, s giogl.Shader) {
	gl.AttachShader(uint32(p.V), uint32(s.V))
}

func (f *glFuncs) BeginQuery(target giogl.Enum, query giogl.Query) {
	gl.BeginQuery(uint32(target), uint32(query.V))
}

func (f *glFuncs) BindAttribLocation(p giogl.Program, a giogl.Attrib, name string) {
	gl.BindAttribLocation(uint32(p.V), uint32(a), gl.Str(name+"\x00"))
}

func (f *glFuncs) BindBuffer(target giogl.Enum, b giogl.Buffer) {
	gl.BindBuffer(uint32(target), uint32(b.V))
}

func (f *glFuncs) BindBufferBase(target giogl.Enum, index int, b giogl.Buffer) {
	gl.BindBufferBase(uint32(target), uint32(index), uint32(b.V))
}

func (f *glFuncs) BindFramebuffer(target giogl.Enum, fb giogl.Framebuffer) {
	gl.BindFramebuffer(uint32(target), uint32(fb.V))
}

func (f *glFuncs) BindRenderbuffer(target giogl.Enum, rb giogl.Renderbuffer) {
	gl.BindRenderbuffer(uint32(target), uint32(rb.V))
}

func (f *glFuncs) BindTexture(target giogl.Enum, t giogl.Texture) {
	gl.BindTexture(uint32(target), uint32(t.V))
}

func (f *glFuncs) BlendEquation(mode giogl.Enum) {
	gl.BlendEquation(uint32(mode))
}

func (f *glFuncs) BlendFunc(sfactor, dfactor giogl.Enum) {
	gl.BlendFunc(uint32(sfactor), uint32(dfactor))
}

func (f *glFuncs) BufferData(target giogl.Enum, src []byte, usage giogl.Enum) {
	gl.BufferData(uint32(target), len(src), gl.Ptr(src), uint32(usage))
}

func (f *glFuncs) CheckFramebufferStatus(target giogl.Enum) giogl.Enum {
	return giogl.Enum(gl.CheckFramebufferStatus(uint32(target)))
}

func (f *glFuncs) Clear(mask giogl.Enum) {
	gl.Clear(uint32(mask))
}

func (f *glFuncs) ClearColor(red, green, blue, alpha float32) {
	gl.ClearColor(red, green, blue, alpha)
}

func (f *glFuncs) ClearDepthf(d float32) {
	gl.ClearDepthf(d)
}

func (f *glFuncs) CompileShader(s giogl.Shader) {
	gl.CompileShader(uint32(s.V))
}

func (f *glFuncs) CreateBuffer() giogl.Buffer {
	var buf uint32
	gl.GenBuffers(1, &buf)
	return giogl.Buffer{V: uint(buf)}
}

func (f *glFuncs) CreateFramebuffer() giogl.Framebuffer {
	var fb uint32
	gl.GenFramebuffers(1, &fb)
	return giogl.Framebuffer{V: uint(fb)}
}

func (f *glFuncs) CreateProgram() giogl.Program {
	return giogl.Program{V: uint(gl.CreateProgram())}
}

func (f *glFuncs) CreateQuery() giogl.Query {
	var q uint32
	gl.GenQueries(1, &q)
	return giogl.Query{V: uint(q)}
}

func (f *glFuncs) CreateRenderbuffer() giogl.Renderbuffer {
	var rb uint32
	gl.GenRenderbuffers(1, &rb)
	return giogl.Renderbuffer{V: uint(rb)}
}

func (f *glFuncs) CreateShader(ty giogl.Enum) giogl.Shader {
	return giogl.Shader{V: uint(gl.CreateShader(uint32(ty)))}
}

func (f *glFuncs) CreateTexture() giogl.Texture {
	var t uint32
	gl.GenTextures(1, &t)
	return giogl.Texture{V: uint(t)}
}

func (f *glFuncs) DeleteBuffer(v giogl.Buffer) {
	buf := uint32(v.V)
	gl.DeleteBuffers(1, &buf)
}

func (f *glFuncs) DeleteFramebuffer(v giogl.Framebuffer) {
	fb := uint32(v.V)
	gl.DeleteFramebuffers(1, &fb)
}

func (f *glFuncs) DeleteProgram(p giogl.Program) {
	gl.DeleteProgram(uint32(p.V))
}

func (f *glFuncs) DeleteQuery(query giogl.Query) {
	q := uint32(query.V)
	gl.DeleteQueries(1, &q)
}

func (f *glFuncs) DeleteRenderbuffer(rb giogl.Renderbuffer) {
	r := uint32(rb.V)
	gl.DeleteRenderbuffers(1, &r)
}

func (f *glFuncs) DeleteShader(s giogl.Shader) {
	gl.DeleteShader(uint32(s.V))
}

func (f *glFuncs) DeleteTexture(v giogl.Texture) {
	t := uint32(v.V)
	gl.DeleteTextures(1, &t)
}

func (f *glFuncs) DepthFunc(d giogl.Enum) {
	gl.DepthFunc(uint32(d))
}

func (f *glFuncs) DepthMask(mask bool) {
	gl.DepthMask(mask)
}

func (f *glFuncs) DisableVertexAttribArray(a giogl.Attrib) {
	gl.DisableVertexAttribArray(uint32(a))
}

func (f *glFuncs) Disable(cap giogl.Enum) {
	gl.Disable(uint32(cap))
}

func (f *glFuncs) DrawArrays(mode giogl.Enum, first, count int) {
	gl.DrawArrays(uint32(mode), int32(first), int32(count))
}

func (f *glFuncs) DrawElements(mode giogl.Enum, count int, ty giogl.Enum, offset int) {
	gl.DrawElements(uint32(mode), int32(count), uint32(ty), unsafe.Pointer(uintptr(offset)))
}

func (f *glFuncs) Enable(cap giogl.Enum) {
	gl.Enable(uint32(cap))
}

func (f *glFuncs) EnableVertexAttribArray(a giogl.Attrib) {
	gl.EnableVertexAttribArray(uint32(a))
}

func (f *glFuncs) EndQuery(target giogl.Enum) {
	gl.EndQuery(uint32(target))
}

func (f *glFuncs) FramebufferRenderbuffer(target, attachment, renderbuffertarget giogl.Enum, renderbuffer giogl.Renderbuffer) {
	gl.FramebufferRenderbuffer(uint32(target), uint32(attachment), uint32(renderbuffertarget), uint32(renderbuffer.V))
}

func (f *glFuncs) FramebufferTexture2D(target, attachment, texTarget giogl.Enum, t giogl.Texture, level int) {
	gl.FramebufferTexture2D(uint32(target), uint32(attachment), uint32(texTarget), uint32(t.V), int32(level))
}

func (f *glFuncs) GetBinding(pname giogl.Enum) giogl.Object {
	var o int32
	gl.GetIntegerv(uint32(pname), &o)
	return giogl.Object{V: uint(o)}
}

func (f *glFuncs) GetError() giogl.Enum {
	return giogl.Enum(gl.GetError())
}

func (f *glFuncs) GetInteger(pname giogl.Enum) int {
	var p [100]int32
	gl.GetIntegerv(uint32(pname), &p[0])
	return int(p[0])
}

func (f *glFuncs) GetProgrami(p giogl.Program, pname giogl.Enum) int {
	var params [100]int32
	gl.GetProgramiv(uint32(p.V), uint32(pname), &params[0])
	return int(params[0])
}

func (f *glFuncs) GetProgramInfoLog(p giogl.Program) string {
	var logLength int32
	gl.GetProgramiv(uint32(p.V), gl.INFO_LOG_LENGTH, &logLength)
	buf := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(uint32(p.V), logLength, nil, gl.Str(buf))
	return buf[:logLength]
}

func (f *glFuncs) GetQueryObjectuiv(query giogl.Query, pname giogl.Enum) uint {
	var i uint32
	gl.GetQueryObjectuiv(uint32(query.V), uint32(pname), &i)
	return uint(i)
}

func (f *glFuncs) GetShaderi(s giogl.Shader, pname giogl.Enum) int {
	var i int32
	gl.GetShaderiv(uint32(s.V), uint32(pname), &i)
	return int(i)
}

func (f *glFuncs) GetShaderInfoLog(s giogl.Shader) string {
	var logLength int32
	gl.GetShaderiv(uint32(s.V), gl.INFO_LOG_LENGTH, &logLength)
	buf := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(uint32(s.V), logLength, nil, gl.Str(buf))
	return buf[:logLength]
}

func (f *glFuncs) GetString(pname giogl.Enum) string {
	switch pname {
	case giogl.EXTENSIONS:
		// The 3.3 core profile dropped glGetString(GL_EXTENSIONS);
		// enumerate with glGetStringi instead.
		var exts []string
		nexts := f.GetInteger(gl.NUM_EXTENSIONS)
		for i := 0; i < nexts; i++ {
			ext := gl.GetStringi(gl.EXTENSIONS, uint32(i))
			exts = append(exts, gl.GoStr(ext))
		}
		return strings.Join(exts, " ")
	default:
		return gl.GoStr(gl.GetString(uint32(pname)))
	}
}

func (f *glFuncs) GetUniformBlockIndex(p giogl.Program, name string) uint {
	return uint(gl.GetUniformBlockIndex(uint32(p.V), gl.Str(name+"\x00")))
}

func (f *glFuncs) GetUniformLocation(p giogl.Program, name string) giogl.Uniform {
	return giogl.Uniform{V: int(gl.GetUniformLocation(uint32(p.V), gl.Str(name+"\x00")))}
}

func (f *glFuncs) InvalidateFramebuffer(target, attachment giogl.Enum) {
	// Not available in the core profile.
}

func (f *glFuncs) LinkProgram(p giogl.Program) {
	gl.LinkProgram(uint32(p.V))
}

func (f *glFuncs) ReadPixels(x, y, width, height int, format, ty giogl.Enum, data []byte) {
	gl.ReadPixels(int32(x), int32(y), int32(width), int32(height), uint32(format), uint32(ty), unsafe.Pointer(&data[0]))
}

func (f *glFuncs) RenderbufferStorage(target, internalformat giogl.Enum, width, height int) {
	gl.RenderbufferStorage(uint32(target), uint32(internalformat), int32(width), int32(height))
}

func (f *glFuncs) ShaderSource(s giogl.Shader, src string) {
	csources, free := gl.Strs(src + "\x00")
	gl.ShaderSource(uint32(s.V), 1, csources, nil)
	free()
}

func (f *glFuncs) TexImage2D(target giogl.Enum, level int, internalFormat int, width, height int, format, ty giogl.Enum, data []byte) {
	var p unsafe.Pointer
	if len(data) > 0 {
		p = unsafe.Pointer(&data[0])
	}
	gl.TexImage2D(uint32(target), int32(level), int32(internalFormat), int32(width), int32(height), 0, uint32(format), uint32(ty), p)
}

func (f *glFuncs) TexSubImage2D(target giogl.Enum, level int, x, y, width, height int, format, ty giogl.Enum, data []byte) {
	var p unsafe.Pointer
	if len(data) > 0 {
		p = unsafe.Pointer(&data[0])
	}
	gl.TexSubImage2D(uint32(target), int32(level), int32(x), int32(y), int32(width), int32(height), uint32(format), uint32(ty), p)
}

func (f *glFuncs) TexParameteri(target, pname giogl.Enum, param int) {
	gl.TexParameteri(uint32(target), uint32(pname), int32(param))
}

func (f *glFuncs) Uniform1f(dst giogl.Uniform, v float32) {
	gl.Uniform1f(int32(dst.V), v)
}

func (f *glFuncs) Uniform1i(dst giogl.Uniform, v int) {
	gl.Uniform1i(int32(dst.V), int32(v))
}

func (f *glFuncs) Uniform2f(dst giogl.Uniform, v0, v1 float32) {
	gl.Uniform2f(int32(dst.V), v0, v1)
}

func (f *glFuncs) Uniform3f(dst giogl.Uniform, v0, v1, v2 float32) {
	gl.Uniform3f(int32(dst.V), v0, v1, v2)
}

func (f *glFuncs) Uniform4f(dst giogl.Uniform, v0, v1, v2, v3 float32) {
	gl.Uniform4f(int32(dst.V), v0, v1, v2, v3)
}

func (f *glFuncs) UniformBlockBinding(p giogl.Program, uniformBlockIndex uint, uniformBlockBinding uint) {
	gl.UniformBlockBinding(uint32(p.V), uint32(uniformBlockIndex), uint32(uniformBlockBinding))
}

func (f *glFuncs) UseProgram(p giogl.Program) {
	gl.UseProgram(uint32(p.V))
}

func (f *glFuncs) VertexAttribPointer(dst giogl.Attrib, size int, ty giogl.Enum, normalized bool, stride, offset int) {
	gl.VertexAttribPointer(uint32(dst), int32(size), uint32(ty), normalized, int32(stride), unsafe.Pointer(uintptr(offset)))
}

func (f *glFuncs) Viewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}
