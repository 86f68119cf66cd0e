package vulkano

import (
	"fmt"
	"image"
	"image/draw"
	"os"
	"unsafe"

	_ "image/jpeg"
	_ "image/png"

	vk "github.com/vulkan-go/vulkan"
)

// Image wraps a native vulkan image along with the Format it was created
// with, so views and layout transitions derived from it can pick the right
// aspect without the caller restating the format.
type Image struct {
	Device  *Device
	VKImage vk.Image
	Format  Format
	Extent  vk.Extent2D
	// Size is the allocation size in bytes, filled in once memory
	// requirements have been queried
	Size uint64
}

// AspectFlags derives the image aspect implied by this format's data class,
// so depth and stencil images get their proper aspect without callers
// maintaining format lists.
func (f Format) AspectFlags() vk.ImageAspectFlags {
	switch f.Class() {
	case FormatClassDepth:
		return vk.ImageAspectFlags(vk.ImageAspectDepthBit)
	case FormatClassStencil:
		return vk.ImageAspectFlags(vk.ImageAspectStencilBit)
	case FormatClassDepthStencil:
		return vk.ImageAspectFlags(vk.ImageAspectDepthBit | vk.ImageAspectStencilBit)
	default:
		return vk.ImageAspectFlags(vk.ImageAspectColorBit)
	}
}

func (i *Image) VKMemoryRequirements() vk.MemoryRequirements {
	var memRequirements vk.MemoryRequirements
	vk.GetImageMemoryRequirements(i.Device.VKDevice, i.VKImage, &memRequirements)
	return memRequirements
}

func (d *Device) CreateImageWithOptions(extent vk.Extent2D, format Format, tiling vk.ImageTiling, usage vk.ImageUsageFlagBits) (*Image, error) {
	var imageInfo = vk.ImageCreateInfo{}
	imageInfo.SType = vk.StructureTypeImageCreateInfo
	imageInfo.ImageType = vk.ImageType2d
	imageInfo.Extent.Width = extent.Width
	imageInfo.Extent.Height = extent.Height
	imageInfo.Extent.Depth = 1
	imageInfo.MipLevels = 1
	imageInfo.ArrayLayers = 1
	imageInfo.Format = format.VK()
	imageInfo.Tiling = tiling
	imageInfo.InitialLayout = vk.ImageLayoutUndefined
	imageInfo.Usage = vk.ImageUsageFlags(usage)
	imageInfo.Samples = vk.SampleCount1Bit
	imageInfo.SharingMode = vk.SharingModeExclusive

	var image vk.Image

	err := vk.Error(vk.CreateImage(d.VKDevice, &imageInfo, nil, &image))
	if err != nil {
		return nil, fmt.Errorf("unable to create image: %w", err)
	}

	var ret Image

	ret.Device = d
	ret.VKImage = image
	ret.Format = format
	ret.Extent = extent

	return &ret, nil
}

func (d *Device) CreateImage(extent vk.Extent2D, format Format, tiling vk.ImageTiling, usage vk.ImageUsageFlags) (*Image, error) {
	return d.CreateImageWithOptions(extent, format, tiling, vk.ImageUsageFlagBits(usage))
}

type BoundImage struct {
	Image
	DeviceMemory *DeviceMemory
}

func (d *Device) CreateBoundImage(extent vk.Extent2D, format Format, tiling vk.ImageTiling, usage vk.ImageUsageFlags, props vk.MemoryPropertyFlags) (*BoundImage, error) {
	i, err := d.CreateImage(extent, format, tiling, usage)
	if err != nil {
		return nil, err
	}

	mr := i.VKMemoryRequirements()

	mr.Deref()

	mem, err := d.Allocate(int(mr.Size), mr.MemoryTypeBits, props)
	if err != nil {
		return nil, err
	}

	boundImage := &BoundImage{}

	boundImage.Image = *i
	boundImage.Size = uint64(mr.Size)
	boundImage.DeviceMemory = mem

	vk.BindImageMemory(d.VKDevice, i.VKImage, mem.VKDeviceMemory, 0)

	return boundImage, nil

}

func (i *Image) Destroy() {
	vk.DestroyImage(i.Device.VKDevice, i.VKImage, nil)
}

// LocalImage is an RGBA image held in host memory which can present
// itself as bytes for staging into device memory.
type LocalImage struct {
	img *image.RGBA
}

func (l *LocalImage) Bytes() []byte {
	const m = 0x7fffffff
	return (*[m]byte)(unsafe.Pointer(&l.img.Pix[0]))[:len(l.img.Pix)]
}

func (l *LocalImage) RGBA() *image.RGBA {
	return l.img
}

func LoadImageFromDisk(file string) (*LocalImage, error) {
	imageFile, err := os.Open(file)
	if err != nil {
		return nil, err
	}

	defer imageFile.Close()

	src, _, err := image.Decode(imageFile)
	if err != nil {
		return nil, err
	}

	b := src.Bounds()
	m := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(m, m.Bounds(), src, b.Min, draw.Src)

	return &LocalImage{m}, nil
}
