/*
Package vulkano implements a safety oriented abstraction atop the Vulkan graphics
framework for go. Vulkan is a very powerful graphics and compute framework, which
expands upon what is possible with OpenGL and OpenCL, but at a cost - it is very
difficult and complex to use, and almost nothing is validated for you at the API
boundary.

This package tries to move a useful slice of that validation from "undefined
behavior at draw time" to "an error value at call time". It does this in two
main ways:

Formats:
	every image format Vulkan knows about is mirrored by a Format constant whose
	numeric code matches the native VkFormat code exactly. Each Format carries a
	FormatClass describing the kind of data it holds (float, signed int, unsigned
	int, depth, stencil, combined depth/stencil, or compressed), so code which
	needs "some depth format" or "some float color format" can check that at
	runtime instead of comparing against hand-maintained lists. FormatFromCode
	converts untrusted native codes back into Formats, refusing codes the
	registry does not know. For code which wants the compiler involved, each
	format also has a zero-sized FormatTag type usable as a type parameter.

Descriptor layouts:
	a SetLayoutDesc describes every binding of a descriptor set layout - its
	binding number, descriptor kind, array size and shader stages. Updates to
	descriptor sets are expressed as WriteParams and validated against the
	SetLayoutDesc before anything is handed to the driver: unknown bindings,
	kind mismatches and out of range array elements are all returned as errors.
	Initialization goes further and requires exactly one write per declared
	array element. PipelineLayoutDesc stacks SetLayoutDescs and push constant
	ranges, and both levels support structural compatibility checks.

Beyond the safety layer this package provides a basic set of APIs which wrap
some of the Vulkan APIs to make them a bit less painful to work with, the trade
off being that many of the native Vulkan APIs expose options which are not
exposed in the APIs provided by the package. To mitigate the drawback of this
approach native vulkan structures are exposed in all the objects prefixed with
'VK' in the name - so applications aren't limited by what this package provides.

GraphicsApp:
	a basic graphics application framework which manages setup and frame drawing
ResourceManager:
	a resource manager which manages memory allocation and can assist with
	staging of resources
Utility interfaces:
	for using and describing data

When thinking about how a graphics application with Vulkan works a very high
level sequence might be:

	1. Initialize the vulkan instance
	2. Setup the swapchain and framebuffers
	3. Allocate buffers and device memory
	4. Load vertex and texture data into host visible memory
	5. Submit command buffers to copy staged data onto the device
	6. Declare descriptor set layouts and create descriptor sets from them
	7. Configure and create a graphics pipeline
	8. Start drawing frames

Steps 6 and 7 are where the declarative layer earns its keep: the same
SetLayoutDesc which creates the native layout also validates every descriptor
write made against it.
*/
package vulkano
