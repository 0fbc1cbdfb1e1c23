package highlight

var glslKeywords = []string{
	"const", "uniform", "buffer", "shared", "attribute", "varying", "coherent", "volatile", "restrict",
	"readonly", "writeonly", "atomic_uint", "layout", "centroid", "flat", "smooth", "noperspective",
	"patch", "sample", "invariant", "precise", "break", "continue", "do", "for", "while", "switch",
	"case", "default", "if", "else", "subroutine", "in", "out", "inout", "int", "void", "bool",
	"true", "false", "float", "double", "discard", "return",
	"vec2", "vec3", "vec4", "ivec2", "ivec3", "ivec4", "bvec2", "bvec3", "bvec4",
	"uint", "uvec2", "uvec3", "uvec4", "dvec2", "dvec3", "dvec4",
	"mat2", "mat3", "mat4", "mat2x2", "mat2x3", "mat2x4", "mat3x2", "mat3x3", "mat3x4",
	"mat4x2", "mat4x3", "mat4x4", "dmat2", "dmat3", "dmat4", "dmat2x2", "dmat2x3", "dmat2x4",
	"dmat3x2", "dmat3x3", "dmat3x4", "dmat4x2", "dmat4x3", "dmat4x4",
	"lowp", "mediump", "highp", "precision",
	"sampler1D", "sampler1DShadow", "sampler1DArray", "sampler1DArrayShadow", "isampler1D",
	"isampler1DArray", "usampler1D", "usampler1DArray", "sampler2D", "sampler2DShadow",
	"sampler2DArray", "sampler2DArrayShadow", "isampler2D", "isampler2DArray", "usampler2D",
	"usampler2DArray", "sampler2DRect", "sampler2DRectShadow", "isampler2DRect", "usampler2DRect",
	"sampler2DMS", "isampler2DMS", "usampler2DMS", "sampler2DMSArray", "isampler2DMSArray",
	"usampler2DMSArray", "sampler3D", "isampler3D", "usampler3D", "samplerCube", "samplerCubeShadow",
	"isamplerCube", "usamplerCube", "samplerCubeArray", "samplerCubeArrayShadow", "isamplerCubeArray",
	"usamplerCubeArray", "samplerBuffer", "isamplerBuffer", "usamplerBuffer",
	"image1D", "iimage1D", "uimage1D", "image1DArray", "iimage1DArray", "uimage1DArray",
	"image2D", "iimage2D", "uimage2D", "image2DArray", "iimage2DArray", "uimage2DArray",
	"image2DRect", "iimage2DRect", "uimage2DRect", "image2DMS", "iimage2DMS", "uimage2DMS",
	"image2DMSArray", "iimage2DMSArray", "uimage2DMSArray", "image3D", "iimage3D", "uimage3D",
	"imageCube", "iimageCube", "uimageCube", "imageCubeArray", "iimageCubeArray", "uimageCubeArray",
	"imageBuffer", "iimageBuffer", "uimageBuffer", "struct",
	"texture1D", "texture1DArray", "itexture1D", "itexture1DArray", "utexture1D", "utexture1DArray",
	"texture2D", "texture2DArray", "itexture2D", "itexture2DArray", "utexture2D", "utexture2DArray",
	"texture2DRect", "itexture2DRect", "utexture2DRect", "texture2DMS", "itexture2DMS", "utexture2DMS",
	"texture2DMSArray", "itexture2DMSArray", "utexture2DMSArray", "texture3D", "itexture3D",
	"utexture3D", "textureCube", "itextureCube", "utextureCube", "textureCubeArray",
	"itextureCubeArray", "utextureCubeArray", "textureBuffer", "itextureBuffer", "utextureBuffer",
	"sampler", "samplerShadow", "subpassInput", "isubpassInput", "usubpassInput", "subpassInputMS",
	"isubpassInputMS", "usubpassInputMS",
	// reserved
	"common", "partition", "active", "asm", "class", "union", "enum", "typedef", "template", "this",
	"resource", "goto", "inline", "noinline", "public", "static", "extern", "external", "interface",
	"long", "short", "half", "fixed", "unsigned", "superp", "input", "output", "hvec2", "hvec3",
	"hvec4", "fvec2", "fvec3", "fvec4", "filter", "sizeof", "cast", "namespace", "using",
	"sampler3DRect",
}

var glslFunctions = []string{
	"radians", "degrees", "sin", "cos", "tan", "asin", "acos", "atan", "sinh", "cosh", "asinh",
	"acosh", "atanh", "pow", "exp", "log", "exp2", "log2", "sqrt", "inversesqrt", "abs", "sign",
	"floor", "trunc", "round", "roundEven", "ceil", "fract", "mod", "modf", "min", "max", "clamp",
	"mix", "step", "smoothstep", "isnan", "isinf", "floatBitsToInt", "floatBitsToUint",
	"intBitsToFloat", "uintBitsToFloat", "fma", "frexp", "ldexp", "packUnorm2x16", "packSnorm2x16",
	"packUnorm4x8", "packSnorm4x8", "unpackUnorm2x16", "unpackSnorm2x16", "unpackUnorm4x8",
	"unpackSnorm4x8", "packHalf2x16", "unpackHalf2x16", "packDouble2x32", "unpackDouble2x32",
	"length", "distance", "dot", "cross", "normalize", "faceforward", "reflect", "refract",
	"matrixCompMult", "outerProduct", "transpose", "determinant", "inverse", "textureSize",
	"texture", "textureProj", "textureLod", "texelFetch", "noise1", "noise2", "noise3", "noise4",
}

var glslVariables = []string{
	"gl_VertexID", "gl_InstanceID", "gl_VertexIndex", "gl_InstanceIndex", "gl_DrawID",
	"gl_BaseVertex", "gl_BaseInstance", "gl_Position", "gl_PointSize", "gl_ClipDistance",
	"gl_CullDistance", "gl_FragCoord", "gl_FrontFacing", "gl_PointCoord", "gl_PrimitiveID",
	"gl_SampleID", "gl_SamplePosition", "gl_SampleMaskIn", "gl_Layer", "gl_ViewportIndex",
	"gl_HelperInvocation", "gl_FragDepth", "gl_SampleMask",
}

// GLSL returns the OpenGL Shading Language definition.
func GLSL() Definition {
	ids := describe(nil, glslFunctions, "Built-in function")
	ids = describe(ids, glslVariables, "Built-in variable")
	return Definition{
		Name:        "GLSL",
		Extensions:  []string{".glsl", ".vert", ".frag", ".geom", ".comp", ".tesc", ".tese"},
		Keywords:    glslKeywords,
		Identifiers: ids,
		Rules: []RuleDefinition{
			{`[ \t]*#[ \t]*[a-zA-Z_]+`, "preprocessor"},
			{`L?"(\\.|[^"])*"`, "string"},
			{`'\\?[^']'`, "char-literal"},
			{`[+-]?([0-9]+([.][0-9]*)?|[.][0-9]+)([eE][+-]?[0-9]+)?[fF]?`, "number"},
			{`[+-]?[0-9]+[Uu]?[lL]?[lL]?`, "number"},
			{`0[0-7]+[Uu]?[lL]?[lL]?`, "number"},
			{`0[xX][0-9a-fA-F]+[uU]?[lL]?[lL]?`, "number"},
			{`[a-zA-Z_][a-zA-Z0-9_]*`, "identifier"},
			{`[\[\]\{\}\!\%\^\&\*\(\)\-\+\=\~\|\<\>\?\/\;\,\.]`, "punctuation"},
		},
		CommentStart:      "/*",
		CommentEnd:        "*/",
		SingleLineComment: "//",
		PreprocChar:       "#",
	}
}

// describe adds names to ids with one shared declaration.
func describe(ids map[string]string, names []string, declaration string) map[string]string {
	if ids == nil {
		ids = make(map[string]string, len(names))
	}
	for _, n := range names {
		ids[n] = declaration
	}
	return ids
}
