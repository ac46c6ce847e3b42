// Package imaging loads token photos and prepares them for region detection.
//
// It covers the pixel-level work that surrounds order recognition:
//
//   - Loading: ImageCache decodes PNG, JPEG and GIF files once per path and
//     applies EXIF orientation so phone photos come out upright.
//   - Preparation: Prepare downscales large photos and optionally applies a
//     Gaussian blur to suppress sensor noise before color masking.
//   - Color: ToHSV converts any color.Color to hue/saturation/value in a
//     device-independent form used by the color bands.
//   - Annotation: Annotate draws a box and a text label over each selected
//     token, and EncodePNGBase64 packs the result for transport.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with the origin at the top-left corner.
// Rectangles follow image.Rectangle: Min is inclusive, Max is exclusive.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. The remaining functions never
// modify their input image and can run concurrently.
package imaging
